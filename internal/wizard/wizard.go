// Package wizard implements the multi-step visa application flow: travelers,
// travel date, and per-traveler document checklists. It is a pure state
// machine with no storage or transport concerns.
package wizard

import (
	"fmt"
	"strings"
	"time"
)

// Step identifies one screen of the flow.
type Step int

const (
	StepTravelers Step = 1
	StepDetails   Step = 2
	StepDocuments Step = 3
)

// transitions lists the steps reachable from each step. Movement is strictly
// one step at a time in either direction.
var transitions = map[Step][]Step{
	StepTravelers: {StepDetails},
	StepDetails:   {StepTravelers, StepDocuments},
	StepDocuments: {StepDetails},
}

// CanTransition reports whether moving from one step to another is allowed.
func CanTransition(from, to Step) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// StepError reports a step that cannot be completed yet.
type StepError struct {
	Step   Step
	Reason string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("wizard: step %d incomplete: %s", e.Step, e.Reason)
}

// Wizard holds the in-progress application state for one visa type.
type Wizard struct {
	VisaFee        float64
	ProcessingDays int

	Step       Step
	Travelers  []Traveler
	TravelDate time.Time

	// Uploads maps "<travelerIndex>/<documentKey>" to the selected file name.
	Uploads map[string]string
}

// New starts the flow at the traveler step with a single traveler.
func New(visaFee float64, processingDays int) *Wizard {
	return &Wizard{
		VisaFee:        visaFee,
		ProcessingDays: processingDays,
		Step:           StepTravelers,
		Travelers:      defaultTravelers(1),
		Uploads:        make(map[string]string),
	}
}

// SetTravelerCount resizes the traveler list. Setting the current count again
// is a no-op; any other count rebuilds the whole list with defaults, discarding
// previous answers.
func (w *Wizard) SetTravelerCount(count int) error {
	if count < 1 {
		return fmt.Errorf("wizard: traveler count must be at least 1, got %d", count)
	}
	if count == len(w.Travelers) {
		return nil
	}
	w.Travelers = defaultTravelers(count)
	return nil
}

// MinTravelDate is the earliest selectable travel date given the visa's
// processing time, measured from today.
func (w *Wizard) MinTravelDate(now time.Time) time.Time {
	return now.AddDate(0, 0, w.ProcessingDays)
}

// SetTravelDate records the intended travel date, rejecting dates inside the
// processing window. Only calendar days count; the time of day carried by
// either argument is ignored, so the boundary day itself is always accepted.
func (w *Wizard) SetTravelDate(now, date time.Time) error {
	min := w.MinTravelDate(now)
	if calendarDay(date).Before(calendarDay(min)) {
		return fmt.Errorf("wizard: travel date %s is before the earliest allowed %s",
			date.Format("2006-01-02"), min.Format("2006-01-02"))
	}
	w.TravelDate = date
	return nil
}

// calendarDay strips the time of day, keeping only the wall-clock date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TotalFee is the visa fee multiplied by the number of travelers.
func (w *Wizard) TotalFee() float64 {
	return w.VisaFee * float64(len(w.Travelers))
}

// RecordUpload notes that a file was selected for a traveler's document.
func (w *Wizard) RecordUpload(travelerIndex int, documentKey, fileName string) error {
	if travelerIndex < 0 || travelerIndex >= len(w.Travelers) {
		return fmt.Errorf("wizard: no traveler at index %d", travelerIndex)
	}
	w.Uploads[uploadKey(travelerIndex, documentKey)] = fileName
	return nil
}

func uploadKey(travelerIndex int, documentKey string) string {
	return fmt.Sprintf("%d/%s", travelerIndex, documentKey)
}

// completeStep reports why the given step cannot be left yet, or nil.
func (w *Wizard) completeStep(step Step) error {
	switch step {
	case StepTravelers:
		if len(w.Travelers) == 0 {
			return &StepError{Step: step, Reason: "no travelers"}
		}
		if w.TravelDate.IsZero() {
			return &StepError{Step: step, Reason: "travel date not set"}
		}
		return nil
	case StepDetails:
		for _, t := range w.Travelers {
			if strings.TrimSpace(t.FullName) == "" {
				return &StepError{Step: step, Reason: fmt.Sprintf("traveler %d has no name", t.Index)}
			}
			if t.Role == RoleAdditional && t.Relationship == "" {
				return &StepError{Step: step, Reason: fmt.Sprintf("traveler %d has no relationship", t.Index)}
			}
		}
		return nil
	case StepDocuments:
		for _, t := range w.Travelers {
			for _, d := range Checklist(t) {
				if !d.Required {
					continue
				}
				if _, ok := w.Uploads[uploadKey(t.Index, d.Key)]; !ok {
					return &StepError{Step: step, Reason: fmt.Sprintf("traveler %d missing %s", t.Index, d.Key)}
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("wizard: unknown step %d", step)
	}
}

// GoTo moves the flow to another step. Moving forward requires the current
// step to be complete; moving back never does.
func (w *Wizard) GoTo(to Step) error {
	if !CanTransition(w.Step, to) {
		return fmt.Errorf("wizard: cannot move from step %d to step %d", w.Step, to)
	}
	if to > w.Step {
		if err := w.completeStep(w.Step); err != nil {
			return err
		}
	}
	w.Step = to
	return nil
}

// Complete reports whether every step's requirements are satisfied, making the
// application ready to submit.
func (w *Wizard) Complete() error {
	for _, step := range []Step{StepTravelers, StepDetails, StepDocuments} {
		if err := w.completeStep(step); err != nil {
			return err
		}
	}
	return nil
}
