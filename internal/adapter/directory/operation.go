package directory

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/domain"
)

const findByEmailPath = "/users/by-email"

// LookupResultHeader marks a 404 that the users service answered for an
// unknown email. Any other 404 (wrong base path, proxy) is a transport failure.
const (
	LookupResultHeader   = "X-Lookup-Result"
	LookupResultNotFound = "not-found"
)

// findByEmailParams contains all the parameters to send to the directory for
// the find user by email operation.
type findByEmailParams struct {
	Email string

	timeout time.Duration
	Context context.Context
}

// WriteToRequest writes these params to a swagger request
func (o *findByEmailParams) WriteToRequest(r runtime.ClientRequest, reg strfmt.Registry) error {
	if err := r.SetTimeout(o.timeout); err != nil {
		return err
	}
	return r.SetQueryParam("email", o.Email)
}

// findByEmailReader is a Reader for the find user by email structure.
type findByEmailReader struct {
	formats strfmt.Registry
}

// ReadResponse reads a server response into the received o.
func (o *findByEmailReader) ReadResponse(response runtime.ClientResponse, consumer runtime.Consumer) (interface{}, error) {
	switch response.Code() {
	case http.StatusOK:
		record := &domain.UserRecord{}
		if err := consumer.Consume(response.Body(), record); err != nil && err != io.EOF {
			return nil, err
		}
		return record, nil
	case http.StatusNotFound:
		if response.GetHeader(LookupResultHeader) == LookupResultNotFound {
			return nil, domain.ErrUserNotFound
		}
		return nil, runtime.NewAPIError("[GET /users/by-email] findUserByEmail", response, response.Code())
	default:
		return nil, runtime.NewAPIError("[GET /users/by-email] findUserByEmail", response, response.Code())
	}
}
