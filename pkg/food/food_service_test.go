package food

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"meal-planner/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadFile(_ context.Context, fileName string, _ *multipart.FileHeader, folder string) (string, error) {
	key := folder + "/" + fileName
	f.uploaded = append(f.uploaded, key)
	return "https://bucket.test/" + key, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeStorage) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.test/"
	if len(link) <= len(prefix) || link[:len(prefix)] != prefix {
		return ""
	}
	return link[len(prefix):]
}

func imageHeader(t *testing.T, name string) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write([]byte("image"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func float(v float64) *float64 { return &v }

func TestFoodService_AddNormalizesTags(t *testing.T) {
	svc := NewFoodService(NewFoodRepository(setupDB(t)), &fakeStorage{})

	res, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:     "  Tofu ",
		Calories: 76,
		Protein:  8.1,
		Category: "BEAN",
		Tags:     []string{"Soy", "light", " soy ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tofu", res.Name)
	assert.Equal(t, "bean", res.Category)
	assert.Equal(t, []string{"light", "soy"}, res.Tags)
	assert.NotEmpty(t, res.ID)
}

func TestFoodService_AddRejectsNegativeNutrition(t *testing.T) {
	svc := NewFoodService(NewFoodRepository(setupDB(t)), &fakeStorage{})

	_, err := svc.AddFoodItem(context.Background(), domain.AddFoodItemRequest{Name: "Bad", Fat: -1, Category: "meat"})
	assert.ErrorIs(t, err, domain.ErrNegativeNutrition)
}

func TestFoodService_UpdateAppliesOnlyGivenFields(t *testing.T) {
	svc := NewFoodService(NewFoodRepository(setupDB(t)), &fakeStorage{})
	ctx := context.Background()

	created, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{Name: "Beef", Calories: 250, Protein: 26.3, Fat: 15.8, Category: "meat"})
	require.NoError(t, err)

	updated, err := svc.UpdateFoodItem(ctx, created.ID, domain.UpdateFoodItemRequest{Calories: float(240)})
	require.NoError(t, err)
	assert.Equal(t, 240.0, updated.Calories)
	assert.Equal(t, 26.3, updated.Protein)
	assert.Equal(t, "Beef", updated.Name)

	_, err = svc.UpdateFoodItem(ctx, created.ID, domain.UpdateFoodItemRequest{Protein: float(-2)})
	assert.ErrorIs(t, err, domain.ErrNegativeNutrition)
}

func TestFoodService_NotFoundAndBadID(t *testing.T) {
	svc := NewFoodService(NewFoodRepository(setupDB(t)), &fakeStorage{})
	ctx := context.Background()

	_, err := svc.GetFoodItemByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	_, err = svc.GetFoodItemByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	err = svc.DeleteFoodItem(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestFoodService_SearchRequiresKeyword(t *testing.T) {
	svc := NewFoodService(NewFoodRepository(setupDB(t)), &fakeStorage{})

	_, err := svc.SearchFoodItems(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptySearchKeyword)
}

func TestFoodService_UploadImageReplacesPrevious(t *testing.T) {
	store := &fakeStorage{}
	svc := NewFoodService(NewFoodRepository(setupDB(t)), store)
	ctx := context.Background()

	created, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{Name: "Apple", Calories: 52, Category: "fruit"})
	require.NoError(t, err)

	_, err = svc.UploadFoodImage(ctx, domain.UploadFoodImageRequest{FoodItemID: created.ID, Image: imageHeader(t, "apple.gif")})
	assert.ErrorIs(t, err, domain.ErrInvalidImageFormat)

	first, err := svc.UploadFoodImage(ctx, domain.UploadFoodImageRequest{FoodItemID: created.ID, Image: imageHeader(t, "apple.png")})
	require.NoError(t, err)
	assert.Contains(t, first.ImageURL, "https://bucket.test/foods/")

	second, err := svc.UploadFoodImage(ctx, domain.UploadFoodImageRequest{FoodItemID: created.ID, Image: imageHeader(t, "apple.JPG")})
	require.NoError(t, err)
	assert.NotEqual(t, first.ImageURL, second.ImageURL)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, store.GetObjectKeyFromLink(first.ImageURL), store.deleted[0])

	require.NoError(t, svc.DeleteFoodItem(ctx, created.ID))
	assert.Len(t, store.deleted, 2)
}

func TestFoodService_GetCatalogReturnsPlannerFoods(t *testing.T) {
	svc := NewFoodService(NewFoodRepository(setupDB(t)), &fakeStorage{})
	ctx := context.Background()

	_, err := svc.AddFoodItem(ctx, domain.AddFoodItemRequest{Name: "Peanuts", Calories: 567, Fat: 49.2, Category: "nut", Tags: []string{"peanut"}})
	require.NoError(t, err)

	catalog, err := svc.GetCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, "nut", catalog[0].Category)
	assert.True(t, catalog[0].HasTag("peanut"))
}
