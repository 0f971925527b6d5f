package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/app/models"
	"github.com/Gibsdevops/kabale-university-AI-and-indabax-website/internal/pkg/apperrors"
)

func performSingleton(t *testing.T, data interface{}, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/singleton", func(c *gin.Context) {
		respondSingleton(c, data, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/singleton", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRespondSingletonPresentRow(t *testing.T) {
	page := &models.AboutPage{Mission: "Grow AI talent in Kabale"}

	w := performSingleton(t, page, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grow AI talent in Kabale")
}

func TestRespondSingletonAbsentRowIsNull(t *testing.T) {
	var page *models.AboutPage

	w := performSingleton(t, page, apperrors.ErrAboutPageNotFound)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":null`)
	assert.NotContains(t, w.Body.String(), "error")
}

func TestRespondSingletonOtherErrorsStillFail(t *testing.T) {
	var page *models.AboutPage

	w := performSingleton(t, page, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
