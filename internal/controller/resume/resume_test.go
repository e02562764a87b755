package resume

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/jawadkoroth/Jobpilotai/internal/auth"
	"github.com/jawadkoroth/Jobpilotai/internal/database"
	"github.com/jawadkoroth/Jobpilotai/internal/middleware"
	"github.com/jawadkoroth/Jobpilotai/internal/model"
	"github.com/jawadkoroth/Jobpilotai/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
	os.Exit(code)
}

type fixture struct {
	r     *gin.Engine
	store *testutil.FakeStorage
	v     *auth.TokenValidator
}

func setup(t *testing.T) fixture {
	t.Helper()
	v := auth.NewTestValidator(t)
	store := testutil.NewFakeStorage()
	rc := NewResumeController(testDB, store)

	r := gin.New()
	r.POST("/parse-resume", rc.Parse)
	g := r.Group("", middleware.RequireAuth(v, nil))
	g.POST("/upload-resume", middleware.SizeLimit(MaxResumeSize), rc.Upload)
	g.POST("/resumes", rc.Save)
	g.GET("/resumes", rc.List)
	g.GET("/resumes/current", rc.Current)
	g.GET("/resumes/files", rc.Files)
	return fixture{r: r, store: store, v: v}
}

func (f fixture) token(t *testing.T, u model.User) string {
	return auth.GetAccessToken(t, f.v, u)
}

func TestUpload_Success(t *testing.T) {
	f := setup(t)
	token := f.token(t, database.TestUser1)

	rec, resp := testutil.MakeMultipartRequest(t, "resume", "My CV.PDF", []byte("%PDF-1.4 fake"), token, f.r, "/upload-resume")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Resume uploaded successfully", resp["message"])

	path := resp["path"].(string)
	assert.True(t, strings.HasPrefix(path, database.TestUser1.ID.String()+"/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))
	_, err := uuid.Parse(strings.TrimSuffix(strings.TrimPrefix(path, database.TestUser1.ID.String()+"/"), ".pdf"))
	assert.NoError(t, err)
	assert.Equal(t, f.store.URL(path), resp["url"])
	assert.Equal(t, []byte("%PDF-1.4 fake"), f.store.Objects[path])
	assert.Equal(t, "application/pdf", f.store.Types[path])
}

func TestUpload_SameFilenameTwice(t *testing.T) {
	f := setup(t)
	token := f.token(t, database.TestUser1)

	_, resp1 := testutil.MakeMultipartRequest(t, "resume", "cv.txt", []byte("one"), token, f.r, "/upload-resume")
	_, resp2 := testutil.MakeMultipartRequest(t, "resume", "cv.txt", []byte("two"), token, f.r, "/upload-resume")

	assert.NotEqual(t, resp1["path"], resp2["path"])
	assert.Len(t, f.store.Objects, 2)
}

func TestUpload_Rejections(t *testing.T) {
	f := setup(t)
	token := f.token(t, database.TestUser1)

	rec, resp := testutil.MakeMultipartRequest(t, "", "", nil, token, f.r, "/upload-resume")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded", resp["error"])

	rec, _ = testutil.MakeMultipartRequest(t, "resume", "photo.png", []byte("\x89PNG"), token, f.r, "/upload-resume")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	big := bytes.Repeat([]byte("a"), MaxResumeSize+1)
	rec, _ = testutil.MakeMultipartRequest(t, "resume", "huge.txt", big, token, f.r, "/upload-resume")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec, resp = testutil.MakeMultipartRequest(t, "resume", "cv.pdf", []byte("%PDF"), "", f.r, "/upload-resume")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", resp["error"])

	assert.Empty(t, f.store.Objects)
}

func TestUpload_StorageError(t *testing.T) {
	f := setup(t)
	f.store.UploadErr = errors.New("The resource already exists")

	rec, resp := testutil.MakeMultipartRequest(t, "resume", "cv.pdf", []byte("%PDF"), f.token(t, database.TestUser1), f.r, "/upload-resume")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "The resource already exists", resp["error"])
}

func TestParse(t *testing.T) {
	f := setup(t)
	f.store.Put("u1/cv.txt", "text/plain", []byte("Jane Doe\nGo developer\n"))
	f.store.Put("u1/photo.png", "image/png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

	rec, resp := testutil.MakeJSONRequest(gin.H{"fileUrl": f.store.URL("u1/cv.txt")}, "", f.r, "/parse-resume", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane Doe\nGo developer", resp["text"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"fileUrl": "u1/cv.txt"}, "", f.r, "/parse-resume", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane Doe\nGo developer", resp["text"])

	rec, resp = testutil.MakeJSONRequest(gin.H{}, "", f.r, "/parse-resume", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File URL is required", resp["error"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"fileUrl": "http://169.254.169.254/latest"}, "", f.r, "/parse-resume", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, resp = testutil.MakeJSONRequest(gin.H{"fileUrl": "u1/missing.pdf"}, "", f.r, "/parse-resume", http.MethodPost)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to parse resume", resp["error"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"fileUrl": "u1/photo.png"}, "", f.r, "/parse-resume", http.MethodPost)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to parse resume", resp["error"])
}

func TestSaveAndList(t *testing.T) {
	f := setup(t)
	token := f.token(t, database.TestUser2)

	rec, resp := testutil.MakeJSONRequest(gin.H{"filename": "first.pdf", "url": "https://files.test/a", "text_content": "A"}, token, f.r, "/resumes", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := resp["resume"].(map[string]interface{})
	assert.Equal(t, database.TestUser2.ID.String(), first["user_id"])

	time.Sleep(10 * time.Millisecond)
	rec, _ = testutil.MakeJSONRequest(gin.H{"filename": "second.pdf", "url": "https://files.test/b", "text_content": "B"}, token, f.r, "/resumes", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp = testutil.MakeJSONRequest(nil, token, f.r, "/resumes", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	list := resp["resumes"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, "second.pdf", list[0].(map[string]interface{})["filename"])

	rec, resp = testutil.MakeJSONRequest(nil, token, f.r, "/resumes/current", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "second.pdf", resp["resume"].(map[string]interface{})["filename"])

	rec, resp = testutil.MakeJSONRequest(gin.H{"filename": "x.pdf"}, token, f.r, "/resumes", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Filename and URL are required", resp["error"])
}

func TestCurrent_SeededNewestFirst(t *testing.T) {
	f := setup(t)
	token := f.token(t, database.TestUser1)

	rec, resp := testutil.MakeJSONRequest(nil, token, f.r, "/resumes/current", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestResumeNew.ID.String(), resp["resume"].(map[string]interface{})["id"])
}

func TestCurrent_None(t *testing.T) {
	f := setup(t)
	stranger := model.User{ID: uuid.New(), Email: "new@example.com", Role: "authenticated"}

	rec, resp := testutil.MakeJSONRequest(nil, f.token(t, stranger), f.r, "/resumes/current", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No resume found", resp["error"])

	rec, resp = testutil.MakeJSONRequest(nil, f.token(t, stranger), f.r, "/resumes", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, resp["resumes"])
}

func TestFiles(t *testing.T) {
	f := setup(t)
	owner := database.TestUser1.ID.String()
	f.store.Put(owner+"/a.pdf", "application/pdf", []byte("a"))
	f.store.Put(owner+"/b.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("b"))
	f.store.Put(database.TestUser2.ID.String()+"/c.pdf", "application/pdf", []byte("c"))

	rec, resp := testutil.MakeJSONRequest(nil, f.token(t, database.TestUser1), f.r, "/resumes/files", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	files := resp["files"].([]interface{})
	require.Len(t, files, 2)
	for _, file := range files {
		assert.True(t, strings.HasPrefix(file.(map[string]interface{})["key"].(string), owner+"/"))
	}

	f.store.ListErr = errors.New("bucket unreachable")
	rec, _ = testutil.MakeJSONRequest(nil, f.token(t, database.TestUser1), f.r, "/resumes/files", http.MethodGet)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
