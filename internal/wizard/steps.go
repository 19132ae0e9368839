package wizard

import (
	"github.com/neuroad/neuroad-cli/internal/api"
	"github.com/neuroad/neuroad-cli/internal/i18n"
)

// Step is a wizard page, numbered from 1.
type Step int

const (
	StepContentType Step = iota + 1
	StepAnalysis
	StepImages
	StepCampaign
	StepStrategy
)

const (
	FirstStep = StepContentType
	LastStep  = StepStrategy
)

// Steps lists every step in order.
var Steps = []Step{StepContentType, StepAnalysis, StepImages, StepCampaign, StepStrategy}

var stepLabels = map[Step]i18n.Key{
	StepContentType: i18n.KeyStep1,
	StepAnalysis:    i18n.KeyStep2,
	StepImages:      i18n.KeyStep3,
	StepCampaign:    i18n.KeyStep4,
	StepStrategy:    i18n.KeyStep5,
}

// Label is the translation key of the step title.
func (s Step) Label() i18n.Key {
	return stepLabels[s]
}

// Number is the 1-based position shown in the progress bar.
func (s Step) Number() int {
	return int(s)
}

func (s Step) String() string {
	return i18n.Translate(i18n.English, s.Label())
}

// Progress is the fraction of the wizard reached at s.
func (s Step) Progress() float64 {
	return float64(s) / float64(len(Steps))
}

// ContentTypeLabels maps each content type to its translation key.
var ContentTypeLabels = map[api.ContentType]i18n.Key{
	api.ContentStore:           i18n.KeyStore,
	api.ContentServiceWebsite:  i18n.KeyServiceWebsite,
	api.ContentSpecificProduct: i18n.KeySpecificProduct,
	api.ContentSpecificService: i18n.KeySpecificService,
}

// GoalLabels maps each design goal to its title and description keys.
var GoalLabels = map[api.DesignGoal][2]i18n.Key{
	api.GoalDirectSale:     {i18n.KeyDirectSale, i18n.KeyDirectSaleDesc},
	api.GoalBrandAwareness: {i18n.KeyBrandAwareness, i18n.KeyBrandAwarenessDesc},
	api.GoalEducational:    {i18n.KeyEducational, i18n.KeyEducationalDesc},
}
