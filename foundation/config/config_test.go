package config_test

import (
	"testing"

	"github.com/superfeelapi/goEmotion/foundation/config"
)

const (
	filepath  = "testdata/profiles.json"
	profileID = "podcast"
)

func TestGetProfile(t *testing.T) {
	t.Run("profile exists", func(t *testing.T) {
		t.Parallel()
		profile, err := config.GetProfile(filepath, profileID)
		if err != nil {
			t.Fatal(err)
		}
		if profile.Name != "Podcast Episodes" {
			t.Fatalf("got profile name %q", profile.Name)
		}
		if !profile.IsTranscriberInUse() {
			t.Fatal("expected transcriber in use")
		}
		if profile.IsRedisInUse() {
			t.Fatal("expected redis not in use")
		}
	})

	t.Run("profile does not exist", func(t *testing.T) {
		t.Parallel()
		_, err := config.GetProfile(filepath, "missing")
		if err == nil {
			t.Fatal("expected an error for a missing profile")
		}
	})

	t.Run("missing profile file", func(t *testing.T) {
		t.Parallel()
		_, err := config.GetProfile("testdata/nope.json", profileID)
		if err == nil {
			t.Fatal("expected an error for a missing file")
		}
	})
}
