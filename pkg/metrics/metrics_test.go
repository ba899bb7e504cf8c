package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPublishStepFailure(t *testing.T) {
	before := testutil.ToFloat64(publishStepFailures.WithLabelValues("revenue"))
	RecordPublishStepFailure("revenue")
	assert.Equal(t, before+1, testutil.ToFloat64(publishStepFailures.WithLabelValues("revenue")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	RecordPublish("success")
	RecordCanvasClaim("rejected")
	RecordHTTPRequest("GET", "/api/apps", "200")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "vibejam_publish_total")
	assert.Contains(t, body, "vibejam_canvas_claims_total")
	assert.Contains(t, body, "vibejam_http_requests_total")
}
