package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// readBody reads the whole request body, refusing more than limit bytes.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errs.NewMalformedInputError(fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		}
		return nil, errs.NewMalformedInputError(fmt.Sprintf("failed to read request body: %v", err))
	}
	return data, nil
}
