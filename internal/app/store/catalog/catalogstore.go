package catalogstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/fizikfinito/fizikfinito/internal/app/store/cms"
	"github.com/fizikfinito/fizikfinito/internal/domain/catalog"
)

// Collection names in the content repository.
const (
	colCategories    = "Kategoriler"
	colSubcategories = "Alt_Kategoriler"
	colTopics        = "Konular"
	colExperiments   = "Deneyler"
)

// Store loads the catalog snapshot. Every page load fetches fresh; there is
// no cache between requests.
type Store struct {
	cms *cms.Client
}

func New(c *cms.Client) *Store {
	return &Store{cms: c}
}

// Raw record shapes as the repository returns them.

type categoryRec struct {
	Name string `json:"kategoriler"`
}

type subcategoryRec struct {
	Name     string `json:"altkategoriler"`
	Category string `json:"kategori"`
}

type topicRec struct {
	Name        string `json:"konu_adi"`
	Subcategory string `json:"altkategori_adi"`
}

type experimentRec struct {
	Name           string `json:"deney_adi"`
	ExperimentText string `json:"deney_yazisi"`
	MaterialsText  string `json:"materiyel_yazisi"`
	VideoURL       string `json:"video_url"`
	Topic          string `json:"konu_adi"`
}

// Load fetches the four collections and assembles the navigable snapshot
// with the "Tüm Kategoriler" sentinel prepended. Records missing their key
// fields are dropped at this boundary so the state machine never sees them.
func (s *Store) Load(ctx context.Context) (catalog.Data, error) {
	var (
		cats []categoryRec
		subs []subcategoryRec
		tops []topicRec
		exps []experimentRec
	)

	if err := s.cms.List(ctx, colCategories, &cats); err != nil {
		return catalog.Data{}, fmt.Errorf("load categories: %w", err)
	}
	if err := s.cms.List(ctx, colSubcategories, &subs); err != nil {
		return catalog.Data{}, fmt.Errorf("load subcategories: %w", err)
	}
	if err := s.cms.List(ctx, colTopics, &tops); err != nil {
		return catalog.Data{}, fmt.Errorf("load topics: %w", err)
	}
	if err := s.cms.List(ctx, colExperiments, &exps); err != nil {
		return catalog.Data{}, fmt.Errorf("load experiments: %w", err)
	}

	var d catalog.Data
	for _, r := range cats {
		if name := strings.TrimSpace(r.Name); name != "" {
			d.Categories = append(d.Categories, catalog.Category{Name: name})
		}
	}
	for _, r := range subs {
		name, cat := strings.TrimSpace(r.Name), strings.TrimSpace(r.Category)
		if name == "" || cat == "" {
			continue
		}
		d.Subcategories = append(d.Subcategories, catalog.Subcategory{Name: name, Category: cat})
	}
	for _, r := range tops {
		name, sub := strings.TrimSpace(r.Name), strings.TrimSpace(r.Subcategory)
		if name == "" || sub == "" {
			continue
		}
		d.Topics = append(d.Topics, catalog.Topic{Name: name, Subcategory: sub})
	}
	for _, r := range exps {
		name, topic := strings.TrimSpace(r.Name), strings.TrimSpace(r.Topic)
		if name == "" || topic == "" {
			continue
		}
		d.Experiments = append(d.Experiments, catalog.Experiment{
			Name:           name,
			Topic:          topic,
			ExperimentText: r.ExperimentText,
			MaterialsText:  r.MaterialsText,
			VideoURL:       r.VideoURL,
		})
	}

	return d.WithAllCategories(), nil
}
