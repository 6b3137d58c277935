package optimizer

import "fmt"

// UnknownIndustryError is returned when no keyword table exists for an industry
type UnknownIndustryError struct {
	Industry string
}

func (e *UnknownIndustryError) Error() string {
	return fmt.Sprintf("unknown industry %q", e.Industry)
}
