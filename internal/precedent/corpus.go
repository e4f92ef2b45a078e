package precedent

import "github.com/dbelyaev/caselens/internal/model"

// corpus is the fixed set of reference cases. There is no persistent case
// database; these five summaries are the entire comparison universe.
var corpus = []model.PrecedentCase{
	{
		Title:            "Smith v. Johnson (2020)",
		Facts:            "Plaintiff alleged breach of contract when defendant failed to deliver goods on time.",
		Outcome:          "Favorable settlement",
		EvidenceStrength: "Strong documentary evidence",
		StrategyUsed:     "Focus on contract terms and damages",
		KeyFactors:       []string{"Clear contract terms", "Documented timeline", "Quantifiable damages"},
	},
	{
		Title:            "Williams v. City Council (2019)",
		Facts:            "Challenge to municipal ordinance on constitutional grounds.",
		Outcome:          "Partially successful",
		EvidenceStrength: "Mixed precedent support",
		StrategyUsed:     "Constitutional rights approach",
		KeyFactors:       []string{"Procedural due process", "Similar precedent cases", "Expert testimony"},
	},
	{
		Title:            "Estate of Roberts v. Medical Center (2021)",
		Facts:            "Medical malpractice claim related to surgical complications.",
		Outcome:          "Loss at trial",
		EvidenceStrength: "Contradictory expert testimony",
		StrategyUsed:     "Technical medical arguments",
		KeyFactors:       []string{"Conflicting expert opinions", "Pre-existing conditions", "Informed consent documentation"},
	},
	{
		Title:            "Thompson v. Insurance Co. (2022)",
		Facts:            "Denial of coverage claim based on policy exclusion.",
		Outcome:          "Win through summary judgment",
		EvidenceStrength: "Clear policy documentation",
		StrategyUsed:     "Strict policy interpretation",
		KeyFactors:       []string{"Policy language clarity", "Industry standards", "Documented communications"},
	},
	{
		Title:            "Garcia Family Trust v. Developer (2021)",
		Facts:            "Property dispute over easement rights and boundary lines.",
		Outcome:          "Settlement after discovery",
		EvidenceStrength: "Historical survey evidence",
		StrategyUsed:     "Historical documentation approach",
		KeyFactors:       []string{"Survey records", "Witness testimony", "Pattern of use"},
	},
}

// Corpus returns a copy of the fixed precedent corpus
func Corpus() []model.PrecedentCase {
	out := make([]model.PrecedentCase, len(corpus))
	copy(out, corpus)
	return out
}
