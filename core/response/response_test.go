package response_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joorhq/joor/core/response"
)

func TestSettersChain(t *testing.T) {
	t.Parallel()

	res := response.New()
	assert.Same(t, res, res.SetStatus(http.StatusOK))
	assert.Same(t, res, res.SetMessage("m"))
	assert.Same(t, res, res.SetData("d"))
	assert.Same(t, res, res.SetJSON("j"))
	assert.Same(t, res, res.SetError("e"))
	assert.Same(t, res, res.SetHeader("X-A", "1"))
	assert.Same(t, res, res.SetHeaders(map[string]string{"X-B": "2"}, false))
	assert.Same(t, res, res.SetCookie("c", "v"))
	assert.Same(t, res, res.SendAsFile("/f"))
	assert.Same(t, res, res.SendAsStream())
	assert.Same(t, res, res.SendAsDownload())
	assert.Same(t, res, res.SendAsSocket(nil))
}

func TestSetHeaders(t *testing.T) {
	t.Parallel()

	t.Run("merge", func(t *testing.T) {
		t.Parallel()
		res := response.New().SetHeader("x-a", "1").SetHeaders(map[string]string{"x-b": "2"}, false)
		assert.Equal(t, map[string]string{"X-A": "1", "X-B": "2"}, res.Headers())
	})

	t.Run("override", func(t *testing.T) {
		t.Parallel()
		res := response.New().SetHeader("x-a", "1").SetHeaders(map[string]string{"x-b": "2"}, true)
		assert.Equal(t, map[string]string{"X-B": "2"}, res.Headers())
	})
}

func TestLastDataSetterWins(t *testing.T) {
	t.Parallel()

	p := response.Prepare(response.New().SetData("raw").SetJSON([]int{1, 2}), response.KindAPI)
	assert.Equal(t, "[1,2]", string(p.Body))
	assert.Equal(t, response.ContentTypeJSON, p.Headers["Content-Type"])
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	p := response.Prepare(response.InternalServerError(), response.KindAPI)
	assert.Equal(t, http.StatusInternalServerError, p.Status)
	assert.Equal(t, "Internal Server Error", string(p.Body))

	p = response.Prepare(response.NotFound(), response.KindWeb)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.Equal(t, response.ContentTypeHTML, p.Headers["Content-Type"])
}

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "api", response.KindAPI.String())
	assert.Equal(t, "web", response.KindWeb.String())
}
