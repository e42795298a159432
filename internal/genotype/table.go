package genotype

var profiles = map[string]Profile{
	"AA-AA": {
		Risk:       RiskLow,
		Title:      "Excellent Compatibility",
		Percentage: 0,
		Recommendations: []string{
			"No special precautions needed for sickle cell disease",
			"Continue with regular prenatal care and health checkups",
			"Maintain healthy lifestyle habits for optimal pregnancy outcomes",
			"Consider general genetic counseling for comprehensive family planning",
		},
		NextSteps: []string{
			"Schedule regular health checkups with your healthcare provider",
			"Consider genetic counseling for complete peace of mind",
			"Focus on general pregnancy wellness and nutrition",
			"Maintain open communication with your partner about family planning",
		},
		Urgency: UrgencyRoutine,
		Videos: []Video{
			{Title: "Understanding Sickle Cell Disease Genetics", VideoID: "yqIkUMnlQSc", Description: "Comprehensive overview of sickle cell genetics and inheritance patterns"},
			{Title: "Healthy Family Planning Guide", VideoID: "3bQv6k7KQ-4", Description: "Essential guide to planning a healthy family with genetic considerations"},
		},
	},
	"AS-AS": {
		Risk:       RiskModerate,
		Title:      "Moderate Risk - Genetic Counseling Recommended",
		Percentage: 0,
		Recommendations: []string{
			"Genetic counseling is strongly recommended before conception",
			"Consider prenatal testing during pregnancy (CVS or amniocentesis)",
			"Discuss family planning options with healthcare provider",
			"Learn about pre-implantation genetic diagnosis (PGD) if using IVF",
		},
		NextSteps: []string{
			"Book appointment with genetic counselor within 2-4 weeks",
			"Research prenatal diagnostic testing options",
			"Consider pre-implantation genetic diagnosis if using IVF",
			"Learn about managing pregnancy with sickle cell trait",
		},
		Urgency: UrgencyModerate,
		Videos: []Video{
			{Title: "Genetic Counseling for Sickle Cell Carriers", VideoID: "M8hH7POiSso", Description: "What to expect during genetic counseling for AS carriers"},
			{Title: "Prenatal Testing Options", VideoID: "KfzqB7Bp_rE", Description: "Understanding CVS, amniocentesis, and other prenatal tests"},
		},
	},
	"SS-SS": {
		Risk:       RiskHigh,
		Title:      "High Risk - Immediate Specialist Consultation Required",
		Percentage: 100,
		Recommendations: []string{
			"URGENT: Consult with hematologist and genetic counselor immediately",
			"Comprehensive family planning consultation needed",
			"Consider all reproductive options including adoption and donor gametes",
			"Join sickle cell support groups for emotional and practical support",
		},
		NextSteps: []string{
			"Schedule appointment with specialist within 1 week",
			"Bring complete family medical history to appointments",
			"Research reproductive alternatives (IVF with PGD, adoption)",
			"Connect with sickle cell disease support communities",
		},
		Urgency: UrgencyHigh,
		Videos: []Video{
			{Title: "Living with Sickle Cell Disease", VideoID: "sB4kPgV2Q4E", Description: "Comprehensive guide to managing sickle cell disease"},
			{Title: "Family Planning with Genetic Conditions", VideoID: "dHfZfNzgEhA", Description: "Reproductive options for couples with genetic conditions"},
		},
	},
	"AS-SS": {
		Risk:       RiskHigh,
		Title:      "High Risk - Specialist Consultation Recommended",
		Percentage: 50,
		Recommendations: []string{
			"Consult with a hematologist and genetic counselor before conception",
			"Consider prenatal testing during pregnancy (CVS or amniocentesis)",
			"Discuss all reproductive options including IVF with PGD",
			"Join sickle cell support groups for emotional and practical support",
		},
		NextSteps: []string{
			"Schedule appointment with specialist within 1 week",
			"Bring complete family medical history to appointments",
			"Research prenatal diagnostic testing options",
			"Connect with sickle cell disease support communities",
		},
		Urgency: UrgencyHigh,
		Videos: []Video{
			{Title: "Living with Sickle Cell Disease", VideoID: "sB4kPgV2Q4E", Description: "Comprehensive guide to managing sickle cell disease"},
			{Title: "Prenatal Testing Options", VideoID: "KfzqB7Bp_rE", Description: "Understanding CVS, amniocentesis, and other prenatal tests"},
		},
	},
	"AA-AS": {
		Risk:       RiskLow,
		Title:      "Low Risk - Good Compatibility",
		Percentage: 0,
		Recommendations: []string{
			"No special precautions needed for sickle cell disease",
			"Continue with regular prenatal care",
			"Maintain healthy lifestyle habits",
			"Consider routine genetic counseling for comprehensive planning",
		},
		NextSteps: []string{
			"Schedule regular health checkups",
			"Consider genetic counseling for complete peace of mind",
			"Focus on general pregnancy wellness",
			"Monitor for any unusual symptoms during pregnancy",
		},
		Urgency: UrgencyRoutine,
		Videos: []Video{
			{Title: "Sickle Cell Trait vs Disease", VideoID: "yqIkUMnlQSc", Description: "Understanding the difference between trait and disease"},
			{Title: "Healthy Pregnancy Planning", VideoID: "3bQv6k7KQ-4", Description: "Essential tips for planning a healthy pregnancy"},
		},
	},
	"AA-SS": {
		Risk:       RiskLow,
		Title:      "Low Risk - Good Compatibility",
		Percentage: 0,
		Recommendations: []string{
			"No special precautions needed for sickle cell disease",
			"Continue with regular prenatal care",
			"Maintain healthy lifestyle habits",
			"Consider routine genetic counseling",
		},
		NextSteps: []string{
			"Schedule regular health checkups",
			"Consider genetic counseling for complete peace of mind",
			"Focus on general pregnancy wellness",
			"Learn about supporting a partner with sickle cell disease",
		},
		Urgency: UrgencyRoutine,
		Videos: []Video{
			{Title: "Supporting Partners with Sickle Cell", VideoID: "sB4kPgV2Q4E", Description: "How to support a partner living with sickle cell disease"},
			{Title: "Genetic Inheritance Patterns", VideoID: "M8hH7POiSso", Description: "Understanding how genetic traits are inherited"},
		},
	},
}
