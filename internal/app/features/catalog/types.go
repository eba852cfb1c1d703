// internal/app/features/catalog/types.go
package catalog

import (
	"net/http"

	"github.com/fizikfinito/fizikfinito/internal/app/system/viewdata"
	domcatalog "github.com/fizikfinito/fizikfinito/internal/domain/catalog"
)

// link is one clickable selection in the browser. URL is the canonical
// href the reducer produced for that click.
type link struct {
	Name   string
	URL    string
	Active bool
}

// topicVM groups the experiments under one topic row. URL clears the
// experiment selection, backing out to the topic list.
type topicVM struct {
	Name        string
	URL         string
	Experiments []link
}

// pageData is the browser view model. Every URL in it comes out of the
// reducer, so a click lands on the same state a client-side transition
// would have produced.
type pageData struct {
	viewdata.BaseVM

	Categories    []link
	Subcategories []link
	Topics        []topicVM

	HasSelection   bool
	ExperimentName string
	TopicName      string

	Tab              domcatalog.ContentType
	ExperimentTabURL string
	MaterialsTabURL  string

	Text       string
	ShowToggle bool
	Expanded   bool
	ToggleURL  string

	VideoURL string
	HasVideo bool

	CanonicalPath string
}

func buildPage(r *http.Request, d domcatalog.Data, s domcatalog.State) pageData {
	title := "Deneyler"
	if s.Experiment != nil {
		title = s.Experiment.Name
	} else if s.Category != "" && s.Category != domcatalog.AllCategories {
		title = s.Category
	}

	vm := pageData{
		BaseVM:        viewdata.NewBaseVM(r, title, "/"),
		Tab:           s.ContentType,
		CanonicalPath: domcatalog.Path(s),
	}

	for _, c := range d.Categories {
		vm.Categories = append(vm.Categories, link{
			Name:   c.Name,
			URL:    stateURL(domcatalog.Apply(d, s, domcatalog.SelectCategory{Name: c.Name})),
			Active: c.Name == s.Category,
		})
	}

	for _, sub := range d.SubcategoriesOf(s.Category) {
		vm.Subcategories = append(vm.Subcategories, link{
			Name:   sub.Name,
			URL:    stateURL(domcatalog.Apply(d, s, domcatalog.SelectSubcategory{Name: sub.Name})),
			Active: s.Subcategory != nil && sub.Name == s.Subcategory.Name,
		})
	}

	if s.Subcategory != nil {
		for _, t := range d.TopicsOf(s.Subcategory.Name) {
			row := topicVM{
				Name: t.Name,
				URL:  stateURL(domcatalog.Apply(d, s, domcatalog.SelectTopic{Name: t.Name})),
			}
			for _, e := range d.ExperimentsOf(t.Name) {
				row.Experiments = append(row.Experiments, link{
					Name:   e.Name,
					URL:    stateURL(domcatalog.Apply(d, s, domcatalog.SelectExperiment{Topic: t.Name, Name: e.Name})),
					Active: s.SelectedExperiment(t.Name, e.Name),
				})
			}
			vm.Topics = append(vm.Topics, row)
		}
	}

	if s.Experiment != nil {
		vm.HasSelection = true
		vm.ExperimentName = s.Experiment.Name
		vm.TopicName = s.Experiment.Topic

		vm.ExperimentTabURL = stateURL(domcatalog.Apply(d, s, domcatalog.SelectContentType{Type: domcatalog.ContentExperiment}))
		vm.MaterialsTabURL = stateURL(domcatalog.Apply(d, s, domcatalog.SelectContentType{Type: domcatalog.ContentMaterials}))

		vm.Text = s.DisplayText()
		vm.ShowToggle = s.Truncatable()
		vm.Expanded = s.Expanded
		vm.ToggleURL = stateURL(domcatalog.Apply(d, s, domcatalog.ToggleExpanded{}))

		if embed, ok := s.Embed(); ok {
			vm.VideoURL = embed
			vm.HasVideo = true
		}
	}

	return vm
}
