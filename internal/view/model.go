// Package view holds the display state of a shares outstanding page.
//
// A ViewModel is built once per load and passed by pointer to whatever renders
// it (HTML page, terminal, JSON). Exactly one of the loader, content and error
// panels is visible at any time.
package view

import (
	"encoding/json"
	"fmt"

	"github.com/rshade/sharesout/internal/shares"
)

// State selects the visible panel.
type State int

const (
	// StateLoading shows the loader while a load is outstanding.
	StateLoading State = iota
	// StateContent shows the extrema.
	StateContent
	// StateError shows the error panel.
	StateError
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateContent:
		return "content"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TitleSuffix follows the entity name in the page title and heading.
const TitleSuffix = " | Shares Outstanding"

// DefaultTitle is shown before any content has been rendered.
const DefaultTitle = "Shares Outstanding"

// ViewModel carries every display field of the page.
type ViewModel struct {
	State        State  `json:"state"`
	Title        string `json:"title"`
	Heading      string `json:"heading"`
	EntityName   string `json:"entityName,omitempty"`
	MaxValue     string `json:"maxValue,omitempty"`
	MaxFY        string `json:"maxFy,omitempty"`
	MinValue     string `json:"minValue,omitempty"`
	MinFY        string `json:"minFy,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	formatter *NumberFormatter
}

// New returns a ViewModel in the loading state using locale for number grouping.
func New(locale string) *ViewModel {
	vm := &ViewModel{formatter: NewNumberFormatter(locale)}
	vm.ShowLoading()
	return vm
}

// ShowLoading makes the loader the only visible panel.
// Fields from an earlier load are kept until the next ShowContent.
func (vm *ViewModel) ShowLoading() {
	vm.State = StateLoading
	if vm.Title == "" {
		vm.Title = DefaultTitle
		vm.Heading = DefaultTitle
	}
}

// ShowContent fills every content field from e and makes the content panel visible.
func (vm *ViewModel) ShowContent(e shares.Extrema) {
	if vm.formatter == nil {
		vm.formatter = NewNumberFormatter("en")
	}
	title := e.EntityName + TitleSuffix

	vm.Title = title
	vm.Heading = title
	vm.EntityName = e.EntityName
	vm.MaxValue = vm.formatter.FormatDecimal(e.Max.Val)
	vm.MaxFY = FormatYear(e.Max.FY)
	vm.MinValue = vm.formatter.FormatDecimal(e.Min.Val)
	vm.MinFY = FormatYear(e.Min.FY)
	vm.ErrorMessage = ""
	vm.State = StateContent
}

// ShowError makes the error panel visible with message as its literal text.
func (vm *ViewModel) ShowError(message string) {
	vm.ErrorMessage = message
	vm.State = StateError
}

// LoaderVisible reports whether the loader panel is shown.
func (vm *ViewModel) LoaderVisible() bool { return vm.State == StateLoading }

// ContentVisible reports whether the content panel is shown.
func (vm *ViewModel) ContentVisible() bool { return vm.State == StateContent }

// ErrorVisible reports whether the error panel is shown.
func (vm *ViewModel) ErrorVisible() bool { return vm.State == StateError }

// MarshalJSON omits content fields outside the content state.
func (vm *ViewModel) MarshalJSON() ([]byte, error) {
	type plain ViewModel
	out := plain(*vm)
	if vm.State != StateContent {
		out.EntityName, out.MaxValue, out.MaxFY, out.MinValue, out.MinFY = "", "", "", "", ""
	}
	if vm.State != StateError {
		out.ErrorMessage = ""
	}
	return json.Marshal(out)
}
