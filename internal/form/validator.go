package form

import (
	"errors"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ValidateStruct works like validation.ValidateStruct but collects every
// failing field into one InvalidArgument status with BadRequest details.
func ValidateStruct(structPtr interface{}, rules ...*validation.FieldRules) error {
	var rawErrors []error

	for _, rule := range rules {
		err := validation.ValidateStruct(structPtr, rule)
		if err != nil {
			rawErrors = append(rawErrors, convertRepositoryErrors(err))
		}
	}
	if len(rawErrors) == 0 {
		return nil
	}

	br := &errdetails.BadRequest{}
	for _, err := range rawErrors {
		for field, msg := range fieldMessages(err) {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       field,
				Description: formatErrMsg(msg),
			})
		}
	}

	st, err := status.New(codes.InvalidArgument, "Validation message").WithDetails(br)
	if err != nil {
		return status.New(codes.Internal, err.Error()).Err()
	}

	return st.Err()
}

// Violations returns the field violations carried by a ValidateStruct error.
func Violations(err error) []*errdetails.BadRequest_FieldViolation {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	var out []*errdetails.BadRequest_FieldViolation
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			out = append(out, br.FieldViolations...)
		}
	}
	return out
}

func fieldMessages(err error) map[string]string {
	var ve validation.Errors
	if errors.As(err, &ve) {
		out := make(map[string]string, len(ve))
		for field, e := range ve {
			out[field] = e.Error()
		}
		return out
	}
	return map[string]string{"": err.Error()}
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+1:]
	}
	return ""
}

func convertRepositoryErrors(err error) error {
	if ve, ok := err.(validation.Errors); ok {
		for key, value := range ve {
			if st := status.Convert(value); st != nil && st.Code() == codes.NotFound {
				ve[key] = errors.New(st.Message())
			}
		}
		return ve
	}
	return err
}
