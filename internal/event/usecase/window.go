package usecase

import (
	"fmt"

	"integra-recife/internal/event"
	"integra-recife/pkg/datemath"
)

// resolveWindow turns request parameters into a window around the current day.
// No parameters means this month; bounds without a window name mean custom.
func (uc *implUseCase) resolveWindow(in event.WindowInput) (datemath.Window, error) {
	kindStr := in.Window
	if kindStr == "" {
		kindStr = string(datemath.WindowMonth)
		if in.From != "" || in.To != "" {
			kindStr = string(datemath.WindowCustom)
		}
	}

	kind, err := datemath.ParseWindowKind(kindStr)
	if err != nil {
		return datemath.Window{}, fmt.Errorf("%w: %v", event.ErrInvalidWindow, err)
	}

	if kind != datemath.WindowCustom {
		return datemath.WindowFor(kind, uc.parser.Now(), uc.cfg.WeekStart)
	}

	from, to := in.From, in.To
	if from == "" {
		from = to
	}
	if to == "" {
		to = from
	}
	if from == "" {
		return datemath.Window{}, fmt.Errorf("%w: custom window needs from or to", event.ErrInvalidWindow)
	}

	fromDay, err := datemath.ParseDay(from)
	if err != nil {
		return datemath.Window{}, fmt.Errorf("%w: %v", event.ErrInvalidDay, err)
	}
	toDay, err := datemath.ParseDay(to)
	if err != nil {
		return datemath.Window{}, fmt.Errorf("%w: %v", event.ErrInvalidDay, err)
	}
	return datemath.Custom(fromDay, toDay, uc.parser.Location()), nil
}
