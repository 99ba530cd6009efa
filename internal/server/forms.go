package server

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"helpbridge/pkg/types"

	"github.com/go-playground/validator/v10"
)

// decodeFilter binds query values onto a FilterSpec and validates it.
func decodeFilter(values url.Values) (types.FilterSpec, error) {
	var filter types.FilterSpec
	if err := decoder.Decode(&filter, values); err != nil {
		return types.FilterSpec{}, fmt.Errorf("failed to decode filters: %w", err)
	}

	filter = filter.Normalize()
	if err := validate.Struct(filter); err != nil {
		return types.FilterSpec{}, err
	}

	return filter, nil
}

func decodeUserFilter(values url.Values) (types.UserFilter, error) {
	var filter types.UserFilter
	if err := decoder.Decode(&filter, values); err != nil {
		return types.UserFilter{}, fmt.Errorf("failed to decode filters: %w", err)
	}

	filter.Search = strings.TrimSpace(filter.Search)
	if err := validate.Struct(filter); err != nil {
		return types.UserFilter{}, err
	}

	return filter, nil
}

// filterErrorMessage names the first rejected filter field.
func filterErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Ignoring invalid %s filter.", strings.ToLower(verrs[0].Field()))
	}
	return "Ignoring invalid filters."
}
