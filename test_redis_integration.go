// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

//go:build integration
// +build integration

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/service"
)

// This is a manual integration test for the Redis document store.
// Run this with: go run -tags integration test_redis_integration.go
// Requires: Redis running on REDIS_HOST:REDIS_PORT (default localhost:6379)

func main() {
	logrus.SetLevel(logrus.DebugLevel)
	logrus.Infof("Starting Redis integration test...")

	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr: common.GetEnv("REDIS_HOST", "localhost") + ":" + common.GetEnv("REDIS_PORT", "6379"),
	})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}

	docs := service.NewRedisDocumentStore(client, service.RedisDocumentStoreConfig{TTL: time.Hour})
	store := service.NewStore(docs)

	testUserID := fmt.Sprintf("test-user-%d", time.Now().Unix())
	logrus.Infof("Testing with user ID: %s", testUserID)
	now := time.Now()

	logrus.Infof("=== Test 1: Read document for new user ===")
	letter := store.Letter(ctx, testUserID)
	if !letter.IsEmpty() {
		logrus.Fatalf("expected empty letter, got %+v", letter)
	}
	logrus.Infof("✓ New user has an empty letter")

	logrus.Infof("=== Test 2: Add gifts ===")
	for _, gift := range []string{"bicicleta", "kite", "Bicicleta"} {
		added, count, err := store.AddGift(ctx, testUserID, gift, now)
		if err != nil {
			logrus.Fatalf("AddGift failed: %v", err)
		}
		logrus.Infof("✓ AddGift(%q): added=%t count=%d", gift, added, count)
	}

	logrus.Infof("=== Test 3: Send letter twice ===")
	sent, ok, err := store.SendLetter(ctx, testUserID, now)
	if err != nil || !ok {
		logrus.Fatalf("SendLetter failed: sent=%t err=%v", ok, err)
	}
	_, again, err := store.SendLetter(ctx, testUserID, now.Add(time.Minute))
	if err != nil || again {
		logrus.Fatalf("second SendLetter should be a no-op: sent=%t err=%v", again, err)
	}
	logrus.Infof("✓ Letter sent at %v", sent.SentAt)

	logrus.Infof("=== Test 4: Trivia and advent ===")
	progress, err := store.RecordAnswer(ctx, testUserID, "reindeer-count", true)
	if err != nil {
		logrus.Fatalf("RecordAnswer failed: %v", err)
	}
	opened, err := store.OpenAdventDay(ctx, testUserID, 5)
	if err != nil {
		logrus.Fatalf("OpenAdventDay failed: %v", err)
	}
	logrus.Infof("✓ Trivia %d/%d, advent day 5 newly opened=%t", progress.CorrectAnswers, progress.QuestionsAnswered, opened)

	logrus.Infof("=== Cleanup ===")
	if err := client.Del(ctx, "santa_skill:user_doc:"+testUserID).Err(); err != nil {
		logrus.Fatalf("cleanup failed: %v", err)
	}
	logrus.Infof("✓ All tests passed!")
}
