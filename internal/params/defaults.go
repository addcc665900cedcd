package params

// Defaults returns the shipped parameter table. These values track the
// latest reviewed estimates (PLFS 2023-24 wage tables, ILO 2024 formal-entry
// rates, program placement data) but are configuration, not constants: any
// CSV table carrying the required names replaces them wholesale via Load.
func Defaults() *Registry {
	reg, err := New([]Parameter{
		// Tier 1: highest uncertainty, largest LNPV impact.
		{
			Name: "p_formal_rte", Value: 0.30, Low: 0.20, High: 0.50,
			Unit: "probability", Tier: 1, Distribution: DistTriangular,
			Source: "program assumption: 3.3x national baseline for RTE graduates",
		},
		{
			Name: "p_formal_hs", Value: 0.091, Low: 0.05, High: 0.15,
			Unit: "probability", Tier: 1,
			Source: "ILO India Employment Report 2024, formal employment for HS youth",
		},
		{
			Name: "p_formal_apprentice", Value: 0.68, Low: 0.50, High: 0.90,
			Unit: "probability", Tier: 1,
			Source: "program placement data, validated Nov 2025",
		},
		{
			Name: "p_formal_no_training", Value: 0.09, Low: 0.05, High: 0.15,
			Unit: "probability", Tier: 1,
			Source: "PLFS aggregate estimates (derived)",
		},
		{
			Name: "rte_test_score_gain", Value: 0.137, Low: 0.10, High: 0.20,
			Unit: "standard deviations", Tier: 1, Distribution: DistTriangular,
			Source: "Muralidharan & Sundararaman (2013) NBER w19441, ITT estimate",
		},
		{
			Name: "apprentice_premium_annual", Value: 78000, Low: 69000, High: 85000,
			Unit: "INR/year", Tier: 1, Distribution: DistTriangular,
			Source: "calculated from placement-weighted wage differential",
		},
		{
			Name: "apprentice_decay_halflife", Value: 12, Low: 5, High: 30,
			Unit: "years", Tier: 1, Distribution: DistTriangular,
			Source: "assumed; no India-specific tracer data",
		},

		// Tier 2: moderate uncertainty with reasonable proxies.
		{
			Name: "mincer_return", Value: 0.058, Low: 0.05, High: 0.09,
			Unit: "proportional increase per year", Tier: 2,
			Source: "Mitra (2019) via Chen et al. (2022), quantile returns 5-9%",
		},
		{
			Name: "test_score_to_years", Value: 6.8, Low: 4.0, High: 8.0,
			Unit: "years per standard deviation", Tier: 2,
			Source: "Angrist & Evans (2020) micro-LAYS rescaling",
		},
		{
			Name: "wage_growth_formal", Value: 0.015, Low: 0.005, High: 0.025,
			Unit: "annual growth rate", Tier: 2,
			Source: "PLFS 2020-24 formal sector trends",
		},
		{
			Name: "wage_growth_informal", Value: -0.002, Low: -0.01, High: 0.005,
			Unit: "annual growth rate", Tier: 2,
			Source: "PLFS 2020-24 informal stagnation",
		},
		{
			Name: "discount_rate", Value: 0.05, Low: 0.03, High: 0.08,
			Unit: "annual discount rate", Tier: 2,
			Source: "extended Ramsey central value for a 40-year horizon",
		},

		// Tier 3: well-established measured data.
		{
			Name: "career_horizon", Value: 40, Low: 35, High: 45,
			Unit: "years", Tier: 3,
			Source: "working life from labor market entry to retirement",
		},
		{
			Name: "apprentice_stipend_monthly", Value: 7000, Low: 5000, High: 9000,
			Unit: "INR/month", Tier: 3,
			Source: "Gazette notification 25 Sep 2019, class 12 pass rate",
		},
		{
			Name: "formal_wage_urban_male", Value: 32800, Low: 30000, High: 35000,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 Table 21, urban male higher secondary",
		},
		{
			Name: "formal_wage_urban_female", Value: 24928, Low: 23000, High: 27000,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 Table 21, urban female higher secondary",
		},
		{
			Name: "formal_wage_rural_male", Value: 22880, Low: 21000, High: 25000,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 Table 21, rural male higher secondary",
		},
		{
			Name: "formal_wage_rural_female", Value: 15558, Low: 14000, High: 17500,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 Table 21, rural female higher secondary",
		},
		{
			Name: "informal_wage_urban_male", Value: 13425, Low: 12000, High: 15000,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 daily casual wage x 25 working days",
		},
		{
			Name: "informal_wage_urban_female", Value: 9129, Low: 8000, High: 10500,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 daily casual wage x 25 working days",
		},
		{
			Name: "informal_wage_rural_male", Value: 11100, Low: 10000, High: 12500,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 daily casual wage x 25 working days",
		},
		{
			Name: "informal_wage_rural_female", Value: 7475, Low: 6500, High: 8500,
			Unit: "INR/month", Tier: 3,
			Source: "PLFS 2023-24 daily casual wage x 25 working days",
		},
	})
	if err != nil {
		// Defaults are compiled in; a validation failure here is a programming error.
		panic(err)
	}
	return reg
}
