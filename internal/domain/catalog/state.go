package catalog

// ContentType selects which text body of an experiment is displayed.
type ContentType string

const (
	ContentExperiment ContentType = "experiment"
	ContentMaterials  ContentType = "materials"
)

// State is the 4-level tree cursor plus display flags. Subcategory and
// Experiment are resolved records (not just names) so templates can read
// their fields without a second lookup; nil means nothing selected at that
// level. Invariant: Subcategory, when set, belongs to Category (the
// AllCategories sentinel admits every subcategory), and Experiment, when
// set, belongs to a topic under Subcategory.
type State struct {
	Category    string
	Subcategory *Subcategory
	Experiment  *Experiment
	ContentType ContentType
	Expanded    bool

	// SubDefaulted marks a subcategory the resolver or a category switch
	// filled in as a fallback rather than one the visitor clicked. Defaulted
	// subcategories render like any other but stay out of the canonical URL.
	SubDefaulted bool
}

// SelectedExperiment reports whether name under topic is the current
// selection.
func (s State) SelectedExperiment(topic, name string) bool {
	return s.Experiment != nil && s.Experiment.Topic == topic && s.Experiment.Name == name
}

// Event is a user interaction fed to Apply.
type Event interface{ isEvent() }

// SelectCategory selects a top-level category by name.
type SelectCategory struct{ Name string }

// SelectSubcategory selects a subcategory by name under the current category.
type SelectSubcategory struct{ Name string }

// SelectTopic selects a topic row; it carries no deeper selection.
type SelectTopic struct{ Name string }

// SelectExperiment selects (or, when already selected, deselects) an
// experiment identified by its topic and name.
type SelectExperiment struct{ Topic, Name string }

// SelectContentType switches between the experiment and materials tabs.
type SelectContentType struct{ Type ContentType }

// ToggleExpanded flips the read-more state of the active text body.
type ToggleExpanded struct{}

func (SelectCategory) isEvent()    {}
func (SelectSubcategory) isEvent() {}
func (SelectTopic) isEvent()       {}
func (SelectExperiment) isEvent()  {}
func (SelectContentType) isEvent() {}
func (ToggleExpanded) isEvent()    {}

// Apply is the reducer: it returns the state that follows ev, never
// mutating its input. Unknown names fall back deterministically (first
// sibling or nil); the reducer never produces a subcategory that does not
// belong to the selected category.
func Apply(d Data, s State, ev Event) State {
	switch e := ev.(type) {
	case SelectCategory:
		return applyCategory(d, s, normName(e.Name))

	case SelectSubcategory:
		sub, ok := d.FindSubcategory(s.Category, normName(e.Name))
		if !ok {
			// Stale or cross-category click: fall back to the first
			// subcategory under the current category.
			return resetBelowCategory(d, s)
		}
		// A different subcategory invalidates every deeper selection,
		// and reselecting the current one is harmless to reset too.
		s.Subcategory = &sub
		s.SubDefaulted = false
		s.Experiment = nil
		return s

	case SelectTopic:
		s.Experiment = nil
		s.Expanded = false
		return s

	case SelectExperiment:
		if s.SelectedExperiment(e.Topic, e.Name) {
			// Toggle off.
			s.Experiment = nil
			return s
		}
		exp, ok := d.FindExperiment(normName(e.Topic), normName(e.Name))
		if !ok {
			s.Experiment = nil
			return s
		}
		s.Experiment = &exp
		s.Expanded = false
		return s

	case SelectContentType:
		if e.Type != ContentExperiment && e.Type != ContentMaterials {
			return s
		}
		s.ContentType = e.Type
		s.Expanded = false
		return s

	case ToggleExpanded:
		s.Expanded = !s.Expanded
		return s
	}
	return s
}

func applyCategory(d Data, s State, name string) State {
	if !d.HasCategory(name) {
		// Unknown category: keep the current one rather than crash.
		return s
	}
	s.Category = name
	if s.Subcategory != nil && belongsTo(*s.Subcategory, name) {
		// Current subcategory survives the switch; nothing deeper resets.
		return s
	}
	return resetBelowCategory(d, s)
}

// resetBelowCategory points the cursor at the first subcategory under the
// current category (nil when the category is empty) and clears everything
// deeper.
func resetBelowCategory(d Data, s State) State {
	subs := d.SubcategoriesOf(s.Category)
	if len(subs) > 0 {
		first := subs[0]
		s.Subcategory = &first
	} else {
		s.Subcategory = nil
	}
	s.SubDefaulted = true
	s.Experiment = nil
	return s
}

// Normalize repairs a state whose invariants no longer hold against d
// (for example after the CMS data changed between requests). It is the
// defensive path: violations are treated as node-not-found and reset.
func Normalize(d Data, s State) State {
	if s.ContentType == "" {
		s.ContentType = ContentExperiment
	}
	if !d.HasCategory(s.Category) {
		if len(d.Categories) == 0 {
			return State{ContentType: s.ContentType}
		}
		s.Category = d.Categories[0].Name
		return resetBelowCategory(d, s)
	}
	if s.Subcategory == nil || !belongsTo(*s.Subcategory, s.Category) {
		s = resetBelowCategory(d, s)
	} else if _, ok := d.FindSubcategory(s.Category, s.Subcategory.Name); !ok {
		s = resetBelowCategory(d, s)
	}
	if s.Experiment != nil {
		if _, ok := d.FindExperiment(s.Experiment.Topic, s.Experiment.Name); !ok {
			s.Experiment = nil
		}
	}
	return s
}
