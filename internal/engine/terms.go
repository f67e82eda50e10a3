package engine

// Term tables for the rule-based scorers. Every table is read-only after
// package init; scorers share them across goroutines without locking.
// Matching is case-insensitive substring presence over already-lowered text.

// categoryKeywords is the per-category keyword lexicon used for the 0-3
// keyword component of the fit score.
var categoryKeywords = map[Category][]string{
	CategoryResurrection: {
		"legacy", "old", "vintage", "retro", "obsolete",
		"deprecated", "outdated", "revive", "modernize",
	},
	CategoryFrankenstein: {
		"combine", "integrate", "merge", "mashup",
		"hybrid", "stitch", "incompatible", "fusion",
	},
	CategorySkeletonCrew: {
		"skeleton", "template", "boilerplate", "starter",
		"scaffold", "foundation", "framework", "reusable", "minimal",
	},
	CategoryCostumeContest: {
		"design", "interface", "theme", "visual", "polish",
		"aesthetic", "halloween", "spooky", "costume",
	},
}

// Thematic alignment tables (0-4 component).

var (
	obsoleteTechTerms  = []string{"legacy", "old", "vintage", "retro", "deprecated", "outdated", "ancient"}
	modernizationTerms = []string{"modern", "update", "refresh", "revive", "reboot", "contemporary"}
	practicalTerms     = []string{"useful", "practical", "solve", "improve", "benefit", "value"}

	integrationTerms   = []string{"integrate", "combine", "merge", "connect", "bridge", "mashup", "stitch"}
	techDiversityTerms = []string{"different", "diverse", "multiple", "various", "distinct"}
	challengeTerms     = []string{"challenge", "difficult", "complex", "ambitious"}

	foundationTerms  = []string{"foundation", "starter", "template", "scaffold", "boilerplate", "skeleton"}
	flexibilityTerms = []string{"flexible", "extensible", "customizable", "modular", "adaptable", "configurable"}
	useCaseTerms     = []string{"use case", "scenario", "example", "application", "demonstrate"}

	designTerms = []string{"design", "interface", "visual", "aesthetic", "style", "theme", "animation", "layout"}
	spookyTerms = []string{"halloween", "spooky", "ghost", "haunted", "pumpkin", "vampire", "eerie", "costume"}
)

// Kiro usage tables (0-3 implementation component and the Implementation
// criterion).

var (
	capabilityTerms  = []string{"agent", "tool", "function", "api", "integration", "automation", "workflow"}
	depthTerms       = []string{"because", "specifically", "detailed", "comprehensive", "strategic"}
	strategyTerms    = []string{"strategy", "approach", "methodology", "systematic"}
	kiroFeatureTerms = []string{"spec", "hook", "steering", "agent", "autopilot", "mcp", "inline", "chat"}
)

// Judged-criteria tables.

var (
	uniquenessTerms      = []string{"unique", "novel", "innovative", "unlike", "first"}
	differentiationTerms = []string{"differentiate", "distinct", "alternative", "stand out"}
	problemTerms         = []string{"problem", "solve", "pain", "need", "gap"}

	uiTerms        = []string{"ui", "interface", "intuitive", "user experience", "ux"}
	usabilityTerms = []string{"design", "usability", "accessible", "responsive"}

	scalabilityTerms  = []string{"scale", "scalable", "performance", "load", "growth"}
	architectureTerms = []string{"architecture", "distributed", "microservice", "modular", "cloud"}
	futureTerms       = []string{"future", "roadmap", "expand", "extend", "plan"}

	technicalTerms = []string{"architecture", "implementation", "algorithm", "framework", "infrastructure"}
	rationaleTerms = []string{"because", "reason", "chose", "decided", "rationale"}
	workflowTerms  = []string{"workflow", "process", "pipeline", "iterative"}

	creativityTerms     = []string{"creative", "imaginative", "clever", "playful", "inventive"}
	unconventionalTerms = []string{"unconventional", "unusual", "unexpected", "surprising"}
	problemSolvingTerms = []string{"solve", "solution", "tackle", "address"}

	originalityTerms = []string{"original", "fresh", "reimagine", "never been", "new take"}
	combinationTerms = []string{"combine", "blend", "fusion", "mashup", "remix"}
	genericTerms     = []string{"simple", "basic", "standard", "typical", "common"}

	polishTerms = []string{"polish", "refined", "finished", "complete", "production-ready"}
	detailTerms = []string{"detail", "attention", "careful", "thorough"}
)

// categorySuggestions holds the fixed improvement suggestions emitted when a
// category's thematic alignment is weak.
var categorySuggestions = map[Category][]string{
	CategoryResurrection: {
		"Name the outdated or abandoned technology the project brings back, and what made it obsolete.",
		"Describe the modern twist: what was updated, refreshed, or rebuilt for today's stack.",
		"Explain the practical value of reviving it rather than starting from scratch.",
	},
	CategoryFrankenstein: {
		"Call out which incompatible technologies were stitched together and where they clash.",
		"Describe the integration seams: how the mismatched pieces actually talk to each other.",
	},
	CategorySkeletonCrew: {
		"Emphasize what the skeleton provides out of the box and what is left for others to flesh out.",
		"Describe how the foundation stays flexible: extension points, configuration, swappable parts.",
		"List a concrete use case another developer could build on top of it.",
	},
	CategoryCostumeContest: {
		"Lean into the Halloween theme: describe the visual identity, not just the functionality.",
		"Attach screenshots or a demo link so judges can see the costume, not just read about it.",
	},
}

// kiroUsageSuggestions is always emitted as a pair when the Kiro usage
// component is weak.
var kiroUsageSuggestions = []string{
	"Describe which Kiro capabilities the project used: agents, hooks, specs, MCP tools, automation.",
	"Explain why each Kiro feature was chosen; specific rationale reads stronger than a feature list.",
}
