package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecheck/framecheck-go/internal/models"
)

func jpeg(name string) models.SelectedFile {
	return models.SelectedFile{
		Name:        name,
		Size:        3,
		ContentType: "image/jpeg",
		Data:        []byte{0xff, 0xd8, 0xff},
	}
}

func newClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, nil)
}

func TestAnalyzeImage_SendsSingleFileField(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/analyze-image/", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		fhs := r.MultipartForm.File["file"]
		require.Len(t, fhs, 1)
		assert.Equal(t, "pier.jpg", fhs[0].Filename)
		assert.Equal(t, "image/jpeg", fhs[0].Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "message": "Image analysis started",
			"image_info": {"filename": "pier.jpg", "width": 1600, "height": 900}}`))
	}))

	res, err := c.AnalyzeImage(context.Background(), jpeg("pier.jpg"))
	require.NoError(t, err)
	assert.True(t, res.Ok())
	assert.Equal(t, "pier.jpg", res.ImageInfo.Filename)
}

func TestFindSimilar_SendsAllFilesInOneRequest(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/find-similar-photographers/", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		fhs := r.MultipartForm.File["files"]
		require.Len(t, fhs, 3)
		assert.Equal(t, "a.jpg", fhs[0].Filename)
		assert.Equal(t, "c.jpg", fhs[2].Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "total_images_processed": 3,
			"similar_photographers": [{"name": "Alex Webb", "similarity_score": 0.873, "sample_count": 20}]}`))
	}))

	res, err := c.FindSimilar(context.Background(), []models.SelectedFile{
		jpeg("a.jpg"), jpeg("b.jpg"), jpeg("c.jpg"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalImagesProcessed)
	require.Len(t, res.SimilarPhotographers, 1)
}

func TestSuggestCrop_DecodesCoordinates(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/suggest-crop/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "subject_detected": true,
			"subject_center": [812, 460], "crop_box": [100, 60, 1300, 860], "crop_ratio": 1.5}`))
	}))

	res, err := c.SuggestCrop(context.Background(), jpeg("pier.jpg"))
	require.NoError(t, err)
	require.NotNil(t, res.CropBox)
	assert.Equal(t, models.Box{X1: 100, Y1: 60, X2: 1300, Y2: 860}, *res.CropBox)
}

func TestPostMultipart_Non2xxWithDetail(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "File must be an image"}`))
	}))

	_, err := c.AnalyzeImage(context.Background(), jpeg("x.jpg"))
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "File must be an image", se.Detail)
	assert.Equal(t, "File must be an image", Reason(err))
}

func TestPostMultipart_Non2xxWithoutDetail(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	}))

	_, err := c.AnalyzeImage(context.Background(), jpeg("x.jpg"))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Empty(t, se.Detail)
	assert.Contains(t, Reason(err), "502")
}

func TestPostMultipart_MalformedBody(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := c.AnalyzeImage(context.Background(), jpeg("x.jpg"))
	require.ErrorIs(t, err, ErrBadResponse)
}

func TestClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second, nil)
	_, err := c.AnalyzeImage(context.Background(), jpeg("x.jpg"))
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPing(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/", r.URL.Path)
			_, _ = w.Write([]byte(`{"message": "FrameCheck API is running"}`))
		}))
		require.NoError(t, c.Ping(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		err := c.Ping(context.Background())
		var se *StatusError
		require.ErrorAs(t, err, &se)
	})
}

func TestServiceLevelFailure_IsNotATransportError(t *testing.T) {
	// success=false on a 200 response must come back as a payload, not error.
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "could not process image"}`))
	}))

	res, err := c.AnalyzeImage(context.Background(), jpeg("x.jpg"))
	require.NoError(t, err)
	assert.False(t, res.Ok())
	assert.Equal(t, "could not process image", res.FailureMessage())
}
