package util

import (
	"fmt"

	"github.com/reconquest/pkg/log"
)

type FatalErrorHandler struct {
	ContinueOnError bool
	failed          int
}

func NewErrorHandler(continueOnError bool) *FatalErrorHandler {
	return &FatalErrorHandler{
		ContinueOnError: continueOnError,
	}
}

// Handle logs the error and exits, unless continue-on-error is set, in
// which case the failure is counted and the caller moves on to the next
// file.
func (h *FatalErrorHandler) Handle(err error, format string, args ...interface{}) {
	h.failed++

	if err == nil {
		if h.ContinueOnError {
			log.Error(fmt.Sprintf(format, args...))
			return
		}
		log.Fatal(fmt.Sprintf(format, args...))
	}

	if h.ContinueOnError {
		log.Errorf(err, format, args...)
		return
	}
	log.Fatalf(err, format, args...)
}

// Summarize reports how many failures were skipped over.
func (h *FatalErrorHandler) Summarize() {
	if h.failed > 0 {
		log.Warningf(nil, "%d files failed", h.failed)
	}
}
