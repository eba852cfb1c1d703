package catalog

// Resolve builds the initial state for a page load from decoded URL
// segments [category, subcategory, topic, experiment]. Missing or unknown
// segments fall back deterministically: first category (or the sentinel
// when present), first subcategory under the resolved category, and no
// topic/experiment unless both segments are present and an experiment
// actually matches the pair.
func Resolve(d Data, segs []string) State {
	s := State{ContentType: ContentExperiment}

	// Category: segment 0 when it names a known category, else the first
	// in the list (which is the AllCategories sentinel on the landing
	// page variant).
	if len(segs) > 0 {
		if name, ok := findCategory(d, segs[0]); ok {
			s.Category = name
		}
	}
	if s.Category == "" {
		if len(d.Categories) == 0 {
			return s
		}
		s.Category = d.Categories[0].Name
	}

	// Subcategory: the segment-1 match under the resolved category, else
	// the first subcategory belonging to it.
	if len(segs) > 1 {
		if sub, ok := findSubcategorySeg(d, s.Category, segs[1]); ok {
			s.Subcategory = &sub
		}
	}
	if s.Subcategory == nil {
		if subs := d.SubcategoriesOf(s.Category); len(subs) > 0 {
			first := subs[0]
			s.Subcategory = &first
			s.SubDefaulted = true
		}
	}

	// Topic and experiment resolve only as a pair.
	if len(segs) > 3 {
		if exp, ok := findExperimentSeg(d, segs[2], segs[3]); ok {
			s.Experiment = &exp
		}
	}

	return s
}

func findCategory(d Data, seg string) (string, bool) {
	for _, c := range d.Categories {
		if matchesSegment(c.Name, seg) {
			return c.Name, true
		}
	}
	return "", false
}

func findSubcategorySeg(d Data, category, seg string) (Subcategory, bool) {
	for _, sub := range d.SubcategoriesOf(category) {
		if matchesSegment(sub.Name, seg) {
			return sub, true
		}
	}
	return Subcategory{}, false
}

func findExperimentSeg(d Data, topicSeg, nameSeg string) (Experiment, bool) {
	for _, e := range d.Experiments {
		if matchesSegment(e.Topic, topicSeg) && matchesSegment(e.Name, nameSeg) {
			return e, true
		}
	}
	return Experiment{}, false
}
