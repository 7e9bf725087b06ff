package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"social-feed-service/internal/custom_errors"
	model "social-feed-service/internal/domain/models"
	"social-feed-service/internal/domain/permissions"
)

func TestIsAuthenticatedOrReadOnly(t *testing.T) {
	adam := &model.Requester{UserID: 1, Username: "adam"}

	tests := []struct {
		name      string
		requester *model.Requester
		action    permissions.Action
		wantErr   error
	}{
		{name: "anonymous read", requester: nil, action: permissions.ActionRead},
		{name: "anonymous write", requester: nil, action: permissions.ActionWrite, wantErr: custom_errors.ErrNotAuthenticated},
		{name: "zero id is anonymous", requester: &model.Requester{}, action: permissions.ActionWrite, wantErr: custom_errors.ErrNotAuthenticated},
		{name: "authenticated write", requester: adam, action: permissions.ActionWrite},
		{name: "authenticated delete", requester: adam, action: permissions.ActionDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := permissions.IsAuthenticatedOrReadOnly(tt.requester, tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsOwnerOrReadOnly(t *testing.T) {
	adam := &model.Requester{UserID: 1, Username: "adam"}
	brian := &model.Requester{UserID: 2, Username: "brian"}

	tests := []struct {
		name      string
		requester *model.Requester
		action    permissions.Action
		ownerID   int64
		wantErr   error
	}{
		{name: "anonymous read", requester: nil, action: permissions.ActionRead, ownerID: 1},
		{name: "non owner read", requester: brian, action: permissions.ActionRead, ownerID: 1},
		{name: "owner write", requester: adam, action: permissions.ActionWrite, ownerID: 1},
		{name: "owner delete", requester: adam, action: permissions.ActionDelete, ownerID: 1},
		{name: "non owner write", requester: brian, action: permissions.ActionWrite, ownerID: 1, wantErr: custom_errors.ErrForbidden},
		{name: "non owner delete", requester: brian, action: permissions.ActionDelete, ownerID: 1, wantErr: custom_errors.ErrForbidden},
		{name: "anonymous write", requester: nil, action: permissions.ActionWrite, ownerID: 1, wantErr: custom_errors.ErrNotAuthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := permissions.IsOwnerOrReadOnly(tt.requester, tt.action, tt.ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "read", permissions.ActionRead.String())
	assert.Equal(t, "write", permissions.ActionWrite.String())
	assert.Equal(t, "delete", permissions.ActionDelete.String())
	assert.True(t, permissions.ActionRead.Safe())
	assert.False(t, permissions.ActionDelete.Safe())
}
