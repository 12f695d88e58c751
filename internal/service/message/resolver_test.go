package message

import (
	"context"
	"testing"

	"caterfind/internal/domain"
	"caterfind/internal/errs"
	repomocks "caterfind/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactResolver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(repo *repomocks.MockContactRepository)
		contactID  int64
		catererID  int64
		wantErr    error
		wantResult domain.Recipient
	}{
		{
			name: "解析成功",
			setupMock: func(repo *repomocks.MockContactRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(101)).Return(domain.Contact{
					ID:        101,
					CatererID: 1,
					Name:      "Suresh",
					Phone:     "9876543210",
					Email:     "suresh@example.in",
					Preferred: domain.ContactMethodSMS,
				}, nil)
			},
			contactID: 101,
			catererID: 1,
			wantResult: domain.Recipient{
				ContactID: 101,
				CatererID: 1,
				Name:      "Suresh",
				Phone:     "9876543210",
				Email:     "suresh@example.in",
				Preferred: domain.ContactMethodSMS,
			},
		},
		{
			name: "联系人不存在",
			setupMock: func(repo *repomocks.MockContactRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(999)).
					Return(domain.Contact{}, errs.ErrContactNotFound)
			},
			contactID: 999,
			catererID: 1,
			wantErr:   errs.ErrContactNotFound,
		},
		{
			// 联系人存在但属于别的商家，与不存在分开报错
			name: "越权访问",
			setupMock: func(repo *repomocks.MockContactRepository) {
				repo.EXPECT().GetByID(gomock.Any(), int64(101)).Return(domain.Contact{
					ID:        101,
					CatererID: 2,
					Name:      "Suresh",
				}, nil)
			},
			contactID: 101,
			catererID: 1,
			wantErr:   errs.ErrContactOwnership,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repomocks.NewMockContactRepository(ctrl)
			tc.setupMock(repo)

			recipient, err := NewContactResolver(repo).Resolve(context.Background(), tc.contactID, tc.catererID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantResult, recipient)
		})
	}
}
