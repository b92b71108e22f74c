package library

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/Praveenmail2him/Hyperfoil/internal/benchmark"
	"github.com/Praveenmail2him/Hyperfoil/internal/session"
	"github.com/Praveenmail2him/Hyperfoil/pkg/jsonpath"
)

// Pool is the narrow submit contract an HttpRequestStep drives (spec.md
// §6); internal/httpclient.Pool satisfies it.
type Pool interface {
	Submit(req *http.Request, onComplete func(resp *http.Response, err error))
}

// HttpRequestStep issues one HTTP request and parks the calling sequence
// instance until the response arrives, storing the response body (and,
// optionally, a JSONPath-extracted field) into session variables.
//
// Pending and StatusVar/BodyVar/ExtractVar are bound once, at scenario-
// build time, against the scenario's variable schema, mirroring
// ScheduleDelayStep's arm/fire pair — one set of slots per step instance,
// shared across every session that runs this step.
type HttpRequestStep struct {
	Method string
	URL    string
	Pool   Pool

	// JSONPath, if non-empty, is extracted from the response body into
	// ExtractVar using the gjson-backed jsonpath package.
	JSONPath string

	Pending    session.Access
	StatusVar  session.Access
	BodyVar    session.Access
	ExtractVar session.Access
}

func (s *HttpRequestStep) Invoke(sess *session.Session) benchmark.Result {
	if !s.Pending.IsSet(sess.Vars) {
		s.Pending.SetInt(sess.Vars, 1)

		req, err := http.NewRequestWithContext(context.Background(), s.Method, s.URL, nil)
		if err != nil {
			return benchmark.ResultFail(err)
		}

		status := s.StatusVar
		body := s.BodyVar
		pending := s.Pending

		s.Pool.Submit(req, func(resp *http.Response, err error) {
			if err != nil {
				pending.SetInt(sess.Vars, 2)
				body.Set(sess.Vars, err)
				sess.Phase.Resume(sess)
				return
			}
			defer resp.Body.Close()
			b, readErr := io.ReadAll(resp.Body)
			if readErr != nil {
				pending.SetInt(sess.Vars, 2)
				body.Set(sess.Vars, readErr)
				sess.Phase.Resume(sess)
				return
			}
			status.SetInt(sess.Vars, int64(resp.StatusCode))
			body.Set(sess.Vars, string(b))
			pending.SetInt(sess.Vars, 3)
			sess.Phase.Resume(sess)
		})
		return benchmark.ResultPark()
	}

	switch s.Pending.GetInt(sess.Vars) {
	case 1:
		return benchmark.ResultPark()
	case 2:
		err, _ := s.BodyVar.Get(sess.Vars).(error)
		s.Pending.Unset(sess.Vars)
		return benchmark.ResultFail(err)
	case 3:
		if s.JSONPath != "" {
			raw, _ := s.BodyVar.Get(sess.Vars).(string)
			val, err := jsonpath.Extract(raw, s.JSONPath)
			if err != nil {
				s.Pending.Unset(sess.Vars)
				return benchmark.ResultFail(fmt.Errorf("extracting %s: %w", s.JSONPath, err))
			}
			s.ExtractVar.Set(sess.Vars, val)
		}
		s.Pending.Unset(sess.Vars)
		return benchmark.ResultAdvance()
	default:
		return benchmark.ResultPark()
	}
}
