package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/ptr/internal/domain"
)

// dateValue parses an MM/DD/YYYY Sunday date into a week start.
type dateValue struct {
	date *time.Time
}

var _ pflag.Value = dateValue{}

func (v dateValue) String() string {
	if v.date == nil || v.date.IsZero() {
		return ""
	}
	return v.date.Format("01/02/2006")
}

func (v dateValue) Set(s string) error {
	d, err := time.Parse("01/02/2006", s)
	if err != nil {
		return fmt.Errorf("bad date %q: want MM/DD/YYYY", s)
	}
	if !domain.IsSunday(d) {
		return fmt.Errorf("%s is not a Sunday", s)
	}
	*v.date = domain.DateOf(d)
	return nil
}

func (v dateValue) Type() string { return "MM/DD/YYYY" }
