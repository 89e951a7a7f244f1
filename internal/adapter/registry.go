package adapter

// Factory builds an adapter from shared dependencies.
type Factory func(Deps) Adapter

// Factories maps adapter names to constructors. The orchestrator instantiates
// from this table so adapter wiring stays in one place.
var Factories = map[string]Factory{
	"portal":         func(d Deps) Adapter { return NewPortalAdapter(d) },
	"results":        func(d Deps) Adapter { return NewResultsAdapter(d) },
	"studysite":      func(d Deps) Adapter { return NewStudySiteAdapter(d) },
	"materialsite":   func(d Deps) Adapter { return NewMaterialSiteAdapter(d) },
	"tutorial":       func(d Deps) Adapter { return NewTutorialAdapter(d) },
	"mcqbank":        func(d Deps) Adapter { return NewMCQBankAdapter(d) },
	"videosearch":    func(d Deps) Adapter { return NewVideoSearchAdapter(d) },
	"courseplatform": func(d Deps) Adapter { return NewCoursePlatformAdapter(d) },
	"forum":          func(d Deps) Adapter { return NewForumAdapter(d) },
}
