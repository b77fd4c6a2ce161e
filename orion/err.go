package orion

import "fmt"

// Handle panics if err is not nil. Use it for setup errors that leave
// nothing sensible to continue with.
func Handle(err error, desc string, args ...any) {
	if err == nil {
		return
	}

	text := fmt.Sprintf(desc, args...)
	panic(text + ": " + err.Error())
}
