package revision_test

import (
	"encoding/json"
	"testing"
	"time"

	"careplan/internal/core/domain/model/kernel"
	"careplan/internal/core/domain/model/revision"
	"careplan/internal/core/domain/model/route"
	"careplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activationChanges() route.Changes {
	return route.Changes{
		"status":    {Old: "draft", New: "active"},
		"startDate": {Old: nil, New: "2026-04-01T09:00:00Z"},
	}
}

func TestNewRecord(t *testing.T) {
	t.Run("creates record for a transition", func(t *testing.T) {
		now := time.Now().UTC()
		payload := revision.NewTransitionPayload(revision.KindActivated, activationChanges())

		record, err := revision.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 2, payload, kernel.NewUUID(), "plan approved", now,
		)

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, 2, record.Version())
		assert.Equal(t, revision.KindActivated, record.Payload().Kind)
		assert.Equal(t, "plan approved", record.Reason())
		assert.Equal(t, now, record.CreatedAt())
	})

	t.Run("version below 1 is invalid", func(t *testing.T) {
		payload := revision.NewTransitionPayload(revision.KindActivated, activationChanges())

		for _, version := range []int{0, -1} {
			_, err := revision.NewRecord(
				kernel.NewUUID(), kernel.NewUUID(), version, payload, kernel.NewUUID(), "", time.Now().UTC(),
			)
			require.ErrorIs(t, err, errs.ErrVersionIsInvalid, "version=%d", version)
		}
	})

	t.Run("rejects invalid actor", func(t *testing.T) {
		var zero kernel.UUID
		payload := revision.NewTransitionPayload(revision.KindActivated, activationChanges())

		_, err := revision.NewRecord(
			kernel.NewUUID(), kernel.NewUUID(), 1, payload, zero, "", time.Now().UTC(),
		)

		require.Error(t, err)
	})

	t.Run("zero value record is not constructed", func(t *testing.T) {
		var record revision.Record

		require.ErrorIs(t, record.Validate(), revision.ErrRecordIsNotConstructed)
	})
}

func TestPayload_Validate(t *testing.T) {
	snapshot := route.Snapshot{ID: kernel.NewUUID().String(), Status: "draft", Title: "Plan"}

	t.Run("created payload requires a snapshot", func(t *testing.T) {
		valid := revision.NewCreatedPayload(snapshot)
		require.NoError(t, valid.Validate())

		invalid := revision.Payload{Kind: revision.KindCreated}
		require.ErrorIs(t, invalid.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("created payload must not carry changes", func(t *testing.T) {
		p := revision.Payload{
			Kind:     revision.KindCreated,
			Snapshot: &snapshot,
			Changes:  route.Changes{"title": {Old: "a", New: "b"}},
		}

		require.ErrorIs(t, p.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("updated payload requires changes and snapshot", func(t *testing.T) {
		valid := revision.NewUpdatedPayload(route.Changes{"title": {Old: "a", New: "b"}}, snapshot)
		require.NoError(t, valid.Validate())

		noChanges := revision.Payload{Kind: revision.KindUpdated, Snapshot: &snapshot}
		require.ErrorIs(t, noChanges.Validate(), errs.ErrValueIsRequired)

		noSnapshot := revision.Payload{
			Kind:    revision.KindUpdated,
			Changes: route.Changes{"title": {Old: "a", New: "b"}},
		}
		require.ErrorIs(t, noSnapshot.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("transition payloads require changes", func(t *testing.T) {
		for _, kind := range []revision.PayloadKind{
			revision.KindActivated, revision.KindCompleted,
			revision.KindPaused, revision.KindResumed, revision.KindArchived,
		} {
			valid := revision.NewTransitionPayload(kind, activationChanges())
			require.NoError(t, valid.Validate(), "kind=%s", kind)

			invalid := revision.Payload{Kind: kind}
			require.ErrorIs(t, invalid.Validate(), errs.ErrValueIsRequired, "kind=%s", kind)
		}
	})

	t.Run("unknown kind is invalid", func(t *testing.T) {
		p := revision.Payload{Kind: "renamed"}

		require.ErrorIs(t, p.Validate(), errs.ErrValueIsInvalid)
	})
}

func TestPayload_JSONShape(t *testing.T) {
	t.Run("transition payload omits snapshot", func(t *testing.T) {
		p := revision.NewTransitionPayload(revision.KindActivated, activationChanges())

		raw, err := json.Marshal(p)

		require.NoError(t, err)
		assert.Contains(t, string(raw), `"kind":"activated"`)
		assert.Contains(t, string(raw), `"changes"`)
		assert.NotContains(t, string(raw), `"snapshot"`)
	})

	t.Run("payload round trips through JSON", func(t *testing.T) {
		snapshot := route.Snapshot{ID: kernel.NewUUID().String(), Status: "draft", Title: "Plan"}
		p := revision.NewUpdatedPayload(route.Changes{"title": {Old: "a", New: "b"}}, snapshot)

		raw, err := json.Marshal(p)
		require.NoError(t, err)

		var decoded revision.Payload
		require.NoError(t, json.Unmarshal(raw, &decoded))
		require.NoError(t, decoded.Validate())
		assert.Equal(t, revision.KindUpdated, decoded.Kind)
		assert.Equal(t, "Plan", decoded.Snapshot.Title)
	})
}
