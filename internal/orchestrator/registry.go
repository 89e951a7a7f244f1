package orchestrator

import "github.com/glboysagar1-prog/study-tracker-sub000/internal/models"

// Subject describes one tracked subject and the seed URLs its adapters start
// from. Adapters with no seed either skip the subject or build a search query
// from the subject name.
type Subject struct {
	Name    string
	Code    string
	Sources map[string]string
}

// GlobalSources seeds the run-level adapters that are not subject scoped.
var GlobalSources = map[string]string{
	"portal":  "https://www.gtu.ac.in/circulars/",
	"results": "https://www.gturesults.in/statistics/",
}

// MergeSubjects appends stored subjects the static table does not cover, so
// re-runs keep refreshing subjects that earlier runs registered. Unmapped
// subjects carry no seeds and run through the search-driven adapters only.
func MergeSubjects(registered []Subject, known []models.Subject) []Subject {
	out := append([]Subject(nil), registered...)
	seen := make(map[string]bool, len(registered))
	for _, s := range registered {
		seen[s.Code] = true
	}
	for _, k := range known {
		if !seen[k.Code] {
			out = append(out, Subject{Name: k.Name, Code: k.Code})
			seen[k.Code] = true
		}
	}
	return out
}

// DefaultSubjects is the static subject registry. The table is fixed at
// build time; subjects supplied at runtime without an entry here still get
// the search-driven adapters.
var DefaultSubjects = []Subject{
	{
		Name: "Data Structures",
		Code: "3130702",
		Sources: map[string]string{
			"studysite":      "https://www.gtustudy.in/subjects/3130702/syllabus/",
			"materialsite":   "https://www.darshan.ac.in/materials/3130702/",
			"tutorial":       "https://www.tutorialspoint.com/data_structures_algorithms/",
			"mcqbank":        "https://www.sanfoundry.com/mcq/data-structure/",
			"courseplatform": "https://nptel.ac.in/courses/data-structures/",
		},
	},
	{
		Name: "Database Management Systems",
		Code: "3130703",
		Sources: map[string]string{
			"studysite":      "https://www.gtustudy.in/subjects/3130703/syllabus/",
			"materialsite":   "https://www.darshan.ac.in/materials/3130703/",
			"tutorial":       "https://www.tutorialspoint.com/dbms/",
			"mcqbank":        "https://www.sanfoundry.com/mcq/dbms/",
			"courseplatform": "https://nptel.ac.in/courses/database-management/",
		},
	},
	{
		Name: "Object Oriented Programming",
		Code: "3140705",
		Sources: map[string]string{
			"studysite":    "https://www.gtustudy.in/subjects/3140705/syllabus/",
			"materialsite": "https://www.darshan.ac.in/materials/3140705/",
			"tutorial":     "https://www.tutorialspoint.com/java/",
			"mcqbank":      "https://www.sanfoundry.com/mcq/java/",
		},
	},
	{
		Name: "Operating Systems",
		Code: "3140702",
		Sources: map[string]string{
			"studysite":      "https://www.gtustudy.in/subjects/3140702/syllabus/",
			"materialsite":   "https://www.darshan.ac.in/materials/3140702/",
			"tutorial":       "https://www.tutorialspoint.com/operating_system/",
			"mcqbank":        "https://www.sanfoundry.com/mcq/operating-system/",
			"courseplatform": "https://nptel.ac.in/courses/operating-systems/",
		},
	},
	{
		Name: "Computer Networks",
		Code: "3150710",
		Sources: map[string]string{
			"studysite":    "https://www.gtustudy.in/subjects/3150710/syllabus/",
			"materialsite": "https://www.darshan.ac.in/materials/3150710/",
			"tutorial":     "https://www.tutorialspoint.com/computer_network/",
			"mcqbank":      "https://www.sanfoundry.com/mcq/computer-networks/",
		},
	},
	{
		Name: "Theory of Computation",
		Code: "3160704",
		Sources: map[string]string{
			"studysite": "https://www.gtustudy.in/subjects/3160704/syllabus/",
			"tutorial":  "https://www.tutorialspoint.com/automata_theory/",
			"mcqbank":   "https://www.sanfoundry.com/mcq/automata-theory/",
		},
	},
}
