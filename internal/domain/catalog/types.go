// Package catalog implements the hierarchical catalog model and the
// selection state machine that drives the experiment browser: four nested
// levels (category → subcategory → topic → experiment) kept consistent
// with each other and with the page URL.
//
// The package is framework independent: handlers feed it URL segments and
// click events, and render whatever state comes back. Nothing in here
// touches net/http or templates.
package catalog

import "strings"

// AllCategories is the synthetic category prepended to the fetched list on
// the landing page. It is not present in the content repository; selecting
// it flattens the browser into a cross-category view.
const AllCategories = "Tüm Kategoriler"

// Category is a top-level grouping, unique by name.
type Category struct {
	Name string
}

// Subcategory belongs to exactly one category by name.
type Subcategory struct {
	Name     string
	Category string
}

// Topic belongs to exactly one subcategory by name.
type Topic struct {
	Name        string
	Subcategory string
}

// Experiment is a leaf: one video plus two text bodies. The literal value
// "?" in a text or video field means the content has not been authored yet
// and must never be shown raw.
type Experiment struct {
	Name           string
	Topic          string
	ExperimentText string
	MaterialsText  string
	VideoURL       string
}

// Data is one fresh snapshot of the four collections. Every page load
// re-fetches it; there is no cross-request cache.
type Data struct {
	Categories    []Category
	Subcategories []Subcategory
	Topics        []Topic
	Experiments   []Experiment
}

// WithAllCategories returns a copy of d whose category list starts with the
// AllCategories sentinel. Calling it twice is harmless.
func (d Data) WithAllCategories() Data {
	if len(d.Categories) > 0 && d.Categories[0].Name == AllCategories {
		return d
	}
	cats := make([]Category, 0, len(d.Categories)+1)
	cats = append(cats, Category{Name: AllCategories})
	cats = append(cats, d.Categories...)
	d.Categories = cats
	return d
}

// HasCategory reports whether name is a known category (sentinel included
// only if present in the list).
func (d Data) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// SubcategoriesOf returns the subcategories under category, in data order.
// The AllCategories sentinel admits every subcategory.
func (d Data) SubcategoriesOf(category string) []Subcategory {
	if category == AllCategories {
		return d.Subcategories
	}
	var out []Subcategory
	for _, s := range d.Subcategories {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// FindSubcategory looks up a subcategory by name under the given category.
func (d Data) FindSubcategory(category, name string) (Subcategory, bool) {
	for _, s := range d.SubcategoriesOf(category) {
		if s.Name == name {
			return s, true
		}
	}
	return Subcategory{}, false
}

// TopicsOf returns the topics under a subcategory, in data order.
func (d Data) TopicsOf(subcategory string) []Topic {
	var out []Topic
	for _, t := range d.Topics {
		if t.Subcategory == subcategory {
			out = append(out, t)
		}
	}
	return out
}

// ExperimentsOf returns the experiments under a topic, in data order.
func (d Data) ExperimentsOf(topic string) []Experiment {
	var out []Experiment
	for _, e := range d.Experiments {
		if e.Topic == topic {
			out = append(out, e)
		}
	}
	return out
}

// FindExperiment looks up an experiment by (topic, name).
func (d Data) FindExperiment(topic, name string) (Experiment, bool) {
	for _, e := range d.Experiments {
		if e.Topic == topic && e.Name == name {
			return e, true
		}
	}
	return Experiment{}, false
}

// belongsTo reports whether sub belongs to category (sentinel admits all).
func belongsTo(sub Subcategory, category string) bool {
	return category == AllCategories || sub.Category == category
}

// normName trims surrounding whitespace; catalog names are compared after
// trimming because CMS editors paste values with stray spaces.
func normName(s string) string {
	return strings.TrimSpace(s)
}
