package campaign

import (
	"github.com/google/uuid"
	"github.com/promokit/backend/internal/domain/shared"
)

// WizardStep identifies a page of the campaign creation wizard
type WizardStep string

const (
	StepBrief            WizardStep = "brief"
	StepSuggestions      WizardStep = "suggestions"
	StepChannelSelection WizardStep = "channel_selection"
	StepAssets           WizardStep = "assets"
	StepDashboard        WizardStep = "dashboard"
)

// ErrInvalidWizardTransition is returned when a transition is attempted from
// the wrong step
var ErrInvalidWizardTransition = shared.NewDomainError("INVALID_WIZARD_TRANSITION", "Transition not allowed from current wizard step")

// WizardState is the serializable state threaded through the campaign
// creation wizard. Nothing here is stored server-side; the client carries the
// value between pages, and only the assets transition commits anything.
//
// Transitions move forward one step at a time. Back returns to the prior
// step with previously entered data intact.
type WizardState struct {
	Step             WizardStep   `json:"step"`
	Brief            *Brief       `json:"brief,omitempty"`
	Suggestions      []Suggestion `json:"suggestions,omitempty"`
	SelectedChannels []string     `json:"selectedChannels,omitempty"`
	CampaignID       *uuid.UUID   `json:"campaignId,omitempty"`
	Assets           *AssetBundle `json:"assets,omitempty"`
}

// NewWizardState starts a wizard at the brief step
func NewWizardState() WizardState {
	return WizardState{Step: StepBrief}
}

// SubmitBrief moves from the brief step to the suggestions step
func (s WizardState) SubmitBrief(brief Brief, suggestions []Suggestion) (WizardState, error) {
	if s.Step != StepBrief {
		return s, ErrInvalidWizardTransition
	}
	if err := brief.Validate(); err != nil {
		return s, err
	}
	if len(suggestions) == 0 {
		return s, shared.NewDomainError("INVALID_WIZARD_TRANSITION", "Suggestions are required to proceed")
	}

	s.Brief = &brief
	s.Suggestions = suggestions
	s.Step = StepSuggestions
	return s, nil
}

// ProceedToChannelSelection moves from suggestions to channel selection
func (s WizardState) ProceedToChannelSelection() (WizardState, error) {
	if s.Step != StepSuggestions {
		return s, ErrInvalidWizardTransition
	}
	s.Step = StepChannelSelection
	return s, nil
}

// SelectChannels records the channels chosen on the selection step
func (s WizardState) SelectChannels(channels []string) (WizardState, error) {
	if s.Step != StepChannelSelection {
		return s, ErrInvalidWizardTransition
	}
	s.SelectedChannels = channels
	return s, nil
}

// CompleteAssets moves to the assets step after the campaign has been
// committed. Requires at least one selected channel.
func (s WizardState) CompleteAssets(campaignID uuid.UUID, assets AssetBundle) (WizardState, error) {
	if s.Step != StepChannelSelection {
		return s, ErrInvalidWizardTransition
	}
	if len(s.SelectedChannels) == 0 {
		return s, shared.NewDomainError("INVALID_WIZARD_TRANSITION", "At least one channel must be selected")
	}

	s.CampaignID = &campaignID
	s.Assets = &assets
	s.Step = StepAssets
	return s, nil
}

// Finish moves from the assets step to the dashboard
func (s WizardState) Finish() (WizardState, error) {
	if s.Step != StepAssets {
		return s, ErrInvalidWizardTransition
	}
	s.Step = StepDashboard
	return s, nil
}

// Back returns to the previous step, keeping entered data
func (s WizardState) Back() (WizardState, error) {
	switch s.Step {
	case StepSuggestions:
		s.Step = StepBrief
	case StepChannelSelection:
		s.Step = StepSuggestions
	case StepAssets:
		s.Step = StepChannelSelection
	case StepDashboard:
		s.Step = StepAssets
	default:
		return s, ErrInvalidWizardTransition
	}
	return s, nil
}
