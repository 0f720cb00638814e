// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/monsterchain/fault"
	"github.com/bitmark-inc/monsterchain/storage/mocks"
)

const (
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

// a fresh database in a temporary directory
func setupTestDB(t *testing.T) (*leveldb.DB, func()) {
	dir, err := ioutil.TempDir("", "storage-access")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	db, err := leveldb.OpenFile(filepath.Join(dir, "access.leveldb"), nil)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("open database error: %s", err)
	}
	return db, func() {
		_ = db.Close()
		_ = os.RemoveAll(dir)
	}
}

func setupTestDataAccess(t *testing.T, cache Cache) (*AccessData, func()) {
	db, teardown := setupTestDB(t)
	return newDA(db, new(leveldb.Batch), cache).(*AccessData), teardown
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	da, teardown := setupTestDataAccess(t, mocks.NewMockCache(ctl))
	defer teardown()

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should with not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second time Begin should return error")
}

func TestCommitResetsInUse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	da, teardown := setupTestDataAccess(t, mocks.NewMockCache(ctl))
	defer teardown()

	_ = da.Begin()
	assert.True(t, da.InUse(), "in use after begin")

	err := da.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, da.InUse(), "in use after commit")

	err = da.Begin()
	assert.Nil(t, err, "begin after commit")
}

func TestCommitWriteToDB(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	mc.EXPECT().Get(defaultKey).Return(nil, false).Times(2)

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	err := da.Commit()
	assert.Nil(t, err, "commit")
	assert.Equal(t, 0, da.batch.Len(), "batch not reset")

	// a cache miss reads the database and leaves the cache alone
	for i := 0; i < 2; i += 1 {
		actual, err := da.Get([]byte(defaultKey))
		assert.Nil(t, err, "get")
		assert.Equal(t, defaultValue, actual, "commit not write to db")
	}
}

func TestDeleteActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	gomock.InOrder(
		mc.EXPECT().Set(dbPut, "a", []byte{'b'}).Times(1),
		mc.EXPECT().Set(dbDelete, "a", gomock.Nil()).Times(1),
	)

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	da.Delete([]byte{'a'})
	assert.Equal(t, 2, da.batch.Len(), "batch records")
}

func TestGetActionReadsFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)
	mc.EXPECT().Get(defaultKey).Return(defaultValue, true).Times(1)

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)

	// not committed: only the cache has it
	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get")
	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestGetCachedDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(defaultKey).Return(nil, true).Times(2)

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "deleted key")

	has, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has")
	assert.False(t, has, "deleted key")
}

func TestGetMissing(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get("missing").Return(nil, false).Times(2)

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_, err := da.Get([]byte("missing"))
	assert.Equal(t, leveldb.ErrNotFound, err, "missing key")

	has, err := da.Has([]byte("missing"))
	assert.Nil(t, err, "has")
	assert.False(t, has, "missing key")
}

func TestAbortResets(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Clear().Times(1)

	da, teardown := setupTestDataAccess(t, mc)
	defer teardown()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	da.Abort()

	assert.False(t, da.InUse(), "inUse is not reset")
	assert.Equal(t, 0, da.batch.Len(), "batch not reset")
}

// with the real cache: pending writes are visible, aborted ones vanish
func TestReadYourWrites(t *testing.T) {
	da, teardown := setupTestDataAccess(t, newCache())
	defer teardown()

	_ = da.Begin()
	da.Put([]byte("one"), []byte("1"))
	err := da.Commit()
	assert.Nil(t, err, "commit")

	_ = da.Begin()
	da.Put([]byte("two"), []byte("2"))
	da.Delete([]byte("one"))

	value, err := da.Get([]byte("two"))
	assert.Nil(t, err, "pending put")
	assert.Equal(t, []byte("2"), value, "pending put")

	has, _ := da.Has([]byte("one"))
	assert.False(t, has, "pending delete")

	da.Abort()

	_, err = da.Get([]byte("two"))
	assert.Equal(t, leveldb.ErrNotFound, err, "aborted put")

	value, err = da.Get([]byte("one"))
	assert.Nil(t, err, "aborted delete")
	assert.Equal(t, []byte("1"), value, "aborted delete")
}

// runs once on the first cache miss, between the miss and the
// database read of the caller
type interleavingCache struct {
	Cache
	onMiss func()
}

func (c *interleavingCache) Get(key string) ([]byte, bool) {
	value, found := c.Cache.Get(key)
	if !found && nil != c.onMiss {
		f := c.onMiss
		c.onMiss = nil
		f()
	}
	return value, found
}

func TestGetDuringPendingPut(t *testing.T) {
	cache := &interleavingCache{Cache: newCache()}
	da, teardown := setupTestDataAccess(t, cache)
	defer teardown()

	key := []byte("monster")

	_ = da.Begin()
	da.Put(key, []byte("old"))
	assert.Nil(t, da.Commit(), "first commit")

	// as if the cached entry had expired
	cache.Clear()

	_ = da.Begin()
	cache.onMiss = func() {
		da.Put(key, []byte("new"))
	}

	// this reader misses the cache before the Put and reads the
	// database after it
	value, err := da.Get(key)
	assert.Nil(t, err, "racing get")
	assert.Equal(t, []byte("old"), value, "racing get")

	value, err = da.Get(key)
	assert.Nil(t, err, "get after put")
	assert.Equal(t, []byte("new"), value, "pending value replaced by database value")

	assert.Nil(t, da.Commit(), "second commit")
	cache.Clear()

	value, err = da.Get(key)
	assert.Nil(t, err, "get after commit")
	assert.Equal(t, []byte("new"), value, "committed value")
}
