package gateway

import (
	"context"
	"net/http"

	"github.com/elC0mpa/cloud-finance/model"
	"github.com/elC0mpa/cloud-finance/response"
)

// Result is a query outcome ready for a transport. Exactly one of Envelope
// and Rejected is set.
type Result struct {
	Status   int
	Envelope *response.Envelope
	Rejected *response.ErrorBody
}

// Body returns whichever payload the result carries
func (r Result) Body() any {
	if r.Rejected != nil {
		return r.Rejected
	}
	return r.Envelope
}

// OK reports whether the query succeeded
func (r Result) OK() bool {
	return r.Envelope != nil && r.Envelope.Success
}

// Respond runs the query and maps its outcome onto a status and body.
// Client errors become a bare error body, everything else an envelope.
func (s *gatewayService) Respond(ctx context.Context, req model.QueryRequest, p *Printer) Result {
	if p == nil {
		p = s.localizer.Default()
	}

	data, err := s.Query(ctx, req)
	if err == nil {
		return Result{Status: http.StatusOK, Envelope: response.Success(data, s.now())}
	}

	return s.failure(err, p)
}

func (s *gatewayService) failure(err error, p *Printer) Result {
	msg := ErrorMessage(p, err)

	if model.KindOf(err) == model.KindMethodNotAllowed {
		return Result{Status: http.StatusMethodNotAllowed, Rejected: &response.ErrorBody{Error: msg}}
	}
	if model.IsClientError(err) {
		return Result{Status: http.StatusBadRequest, Rejected: &response.ErrorBody{Error: msg}}
	}

	return Result{
		Status:   http.StatusInternalServerError,
		Envelope: response.Failure(msg, p.Sprintf(msgInternal), s.now()),
	}
}
