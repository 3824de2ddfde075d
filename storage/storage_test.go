package storage_test

import (
	"mime/multipart"
	"testing"

	"github.com/blockchainsamuel0/calabarEats/storage"

	"github.com/stretchr/testify/assert"
)

func photos(sizes ...int64) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(sizes))
	for i, size := range sizes {
		out[i] = &multipart.FileHeader{Filename: "photo.jpg", Size: size}
	}
	return out
}

func TestValidateVettingPhotos(t *testing.T) {
	ok := photos(1024, 1024, 1024, 1024, 1024)
	assert.NoError(t, storage.ValidateVettingPhotos(ok))
}

func TestValidateVettingPhotosExactCount(t *testing.T) {
	assert.Error(t, storage.ValidateVettingPhotos(photos(1024, 1024, 1024, 1024)), "four photos is too few")
	assert.Error(t, storage.ValidateVettingPhotos(photos(1024, 1024, 1024, 1024, 1024, 1024)), "six photos is too many")
	assert.Error(t, storage.ValidateVettingPhotos(nil))
}

func TestValidateVettingPhotosSizeLimit(t *testing.T) {
	over := photos(1024, 1024, storage.MaxPhotoSize+1, 1024, 1024)
	err := storage.ValidateVettingPhotos(over)
	assert.ErrorContains(t, err, "5MB")

	atLimit := photos(storage.MaxPhotoSize, 1024, 1024, 1024, 1024)
	assert.NoError(t, storage.ValidateVettingPhotos(atLimit), "exactly 5MB is allowed")
}
