package catalog

import (
	"econlearn/internal/domain/concept"
	"econlearn/internal/domain/expert"
	"econlearn/internal/pkg/errs"
)

// NewSeededStore builds the static catalog the service ships with. Seed
// records pass through the same domain constructors as any other data, so a
// malformed entry fails startup instead of surfacing as a silent "no match"
// during requests.
func NewSeededStore() (*Store, error) {
	experts, err := seedExperts()
	if err != nil {
		return nil, errs.Wrap(err, "invalid expert seed data")
	}
	return NewStore(seedConcepts(), seedModules(), experts)
}

func seedConcepts() []concept.Concept {
	return []concept.Concept{
		{
			ID:      "supply-demand",
			Title:   "Supply and Demand",
			Summary: "How markets balance production and consumption through price signals.",
			WhyItMatters: "Supply and demand analysis guides pricing, inventory planning, and policy " +
				"decisions across every industry.",
		},
		{
			ID:      "gdp-measurement",
			Title:   "GDP and Economic Growth",
			Summary: "The accounting systems that track the value of goods and services over time.",
			WhyItMatters: "Understanding GDP allows leaders to interpret macroeconomic performance " +
				"and benchmark business strategies.",
		},
		{
			ID:      "monetary-policy",
			Title:   "Monetary Policy Mechanics",
			Summary: "How central banks influence money supply, interest rates, and liquidity.",
			WhyItMatters: "Professionals use monetary policy insights to anticipate capital costs and " +
				"market volatility.",
		},
		{
			ID:    "market-failures",
			Title: "Market Failures and Externalities",
			Summary: "When markets misprice risk, information, or societal costs and how policy " +
				"attempts to fix the gaps.",
			WhyItMatters: "Identifying market failures is essential for designing regulation and " +
				"building sustainable business models.",
		},
	}
}

func seedModules() []concept.LearningModule {
	return []concept.LearningModule{
		{
			ID:        "supply-demand-foundations",
			ConceptID: "supply-demand",
			Title:     "Visualizing Supply and Demand Curves",
			Objectives: []string{
				"Interpret shifts versus movements along curves",
				"Calculate equilibrium price and quantity",
				"Identify factors that drive supply or demand shocks",
			},
			ContentSummary: "Interactive walkthrough using historical commodities data to illustrate " +
				"equilibrium adjustments.",
			Resources: []concept.ModuleResource{
				{
					Type:  "video",
					Title: "Crash course in supply-demand dynamics",
					URL:   "https://example.com/videos/supply-demand",
				},
				{
					Type:  "dataset",
					Title: "US wheat futures (2010-2020)",
					URL:   "https://example.com/data/wheat-futures",
				},
			},
		},
		{
			ID:        "supply-demand-scenarios",
			ConceptID: "supply-demand",
			Title:     "Scenario Planning for Pricing Teams",
			Objectives: []string{
				"Build simple elasticity calculators",
				"Simulate price floors and ceilings",
				"Discuss cross elasticity in bundled offerings",
			},
			ContentSummary: "Spreadsheet driven workshop that explores how pricing teams test " +
				"launch strategies using elasticity models.",
			Resources: []concept.ModuleResource{
				{
					Type:  "worksheet",
					Title: "Elasticity sensitivity template",
					URL:   "https://example.com/resources/elasticity-template",
				},
			},
		},
		{
			ID:        "gdp-accounting",
			ConceptID: "gdp-measurement",
			Title:     "Building a GDP Accounting Dashboard",
			Objectives: []string{
				"Compare expenditure and income approaches",
				"Identify leading and lagging GDP components",
				"Translate GDP releases into business indicators",
			},
			ContentSummary: "Learners populate a dashboard that connects GDP releases to hiring " +
				"and investment decisions.",
			Resources: []concept.ModuleResource{
				{
					Type:  "article",
					Title: "Guide to GDP data sources",
					URL:   "https://example.com/articles/gdp-guide",
				},
			},
		},
		{
			ID:        "monetary-policy-tools",
			ConceptID: "monetary-policy",
			Title:     "Central Bank Playbooks",
			Objectives: []string{
				"Differentiate between conventional and unconventional tools",
				"Model how rate decisions affect corporate finance",
				"Track communication strategies in policy signaling",
			},
			ContentSummary: "Case-based module analyzing how the Federal Reserve and ECB respond " +
				"to inflationary and deflationary pressures.",
			Resources: []concept.ModuleResource{
				{
					Type:  "podcast",
					Title: "Inside the FOMC",
					URL:   "https://example.com/podcasts/inside-fomc",
				},
			},
		},
		{
			ID:        "market-failure-lab",
			ConceptID: "market-failures",
			Title:     "Diagnosing Externalities in Emerging Markets",
			Objectives: []string{
				"Map information asymmetries",
				"Design public-private intervention frameworks",
				"Evaluate impact investing metrics",
			},
			ContentSummary: "Collaborative workshop where learners design policy briefs for urban " +
				"mobility and carbon trading.",
			Resources: []concept.ModuleResource{
				{
					Type:  "report",
					Title: "World Bank case studies on externalities",
					URL:   "https://example.com/reports/externalities",
				},
			},
		},
	}
}

type seedWindow struct {
	weekday        string
	startH, startM int
	endH, endM     int
}

func seedExperts() ([]*expert.Expert, error) {
	specs := []struct {
		id            string
		name          string
		credentials   string
		focusAreas    []string
		ratePerHour   float64
		groupDiscount float64
		windows       []seedWindow
	}{
		{
			id:            "dr-rivera",
			name:          "Dr. Helena Rivera",
			credentials:   "Former World Bank chief economist, author of 'Resilient Markets'",
			focusAreas:    []string{"market-failures", "gdp-measurement"},
			ratePerHour:   650.0,
			groupDiscount: 0.85,
			windows: []seedWindow{
				{weekday: "tuesday", startH: 13, startM: 0, endH: 16, endM: 0},
				{weekday: "thursday", startH: 9, startM: 0, endH: 11, endM: 30},
			},
		},
		{
			id:            "prof-chan",
			name:          "Prof. Aaron Chan",
			credentials:   "MIT Sloan professor of managerial economics",
			focusAreas:    []string{"supply-demand", "monetary-policy"},
			ratePerHour:   500.0,
			groupDiscount: 0.9,
			windows: []seedWindow{
				{weekday: "wednesday", startH: 15, startM: 0, endH: 18, endM: 0},
				{weekday: "friday", startH: 8, startM: 30, endH: 12, endM: 0},
			},
		},
		{
			id:            "dr-saito",
			name:          "Dr. Naomi Saito",
			credentials:   "Senior advisor at the Bank for International Settlements",
			focusAreas:    []string{"monetary-policy"},
			ratePerHour:   720.0,
			groupDiscount: 0.8,
			windows: []seedWindow{
				{weekday: "monday", startH: 10, startM: 0, endH: 12, endM: 30},
				{weekday: "thursday", startH: 14, startM: 0, endH: 17, endM: 30},
			},
		},
	}

	experts := make([]*expert.Expert, 0, len(specs))
	for _, spec := range specs {
		windows := make([]expert.AvailabilityWindow, 0, len(spec.windows))
		for _, w := range spec.windows {
			start, err := expert.NewTimeOfDay(w.startH, w.startM)
			if err != nil {
				return nil, err
			}
			end, err := expert.NewTimeOfDay(w.endH, w.endM)
			if err != nil {
				return nil, err
			}
			window, err := expert.NewAvailabilityWindow(w.weekday, start, end)
			if err != nil {
				return nil, err
			}
			windows = append(windows, window)
		}

		e, err := expert.NewExpert(
			spec.id,
			spec.name,
			spec.credentials,
			spec.focusAreas,
			spec.ratePerHour,
			spec.groupDiscount,
			windows,
		)
		if err != nil {
			return nil, err
		}
		experts = append(experts, e)
	}

	return experts, nil
}
