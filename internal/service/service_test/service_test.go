package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WeGoWinPrikitiw/pico-sub001/internal/discovery"
	"github.com/WeGoWinPrikitiw/pico-sub001/internal/service"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/cache"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/client/canister"
	"github.com/WeGoWinPrikitiw/pico-sub001/pkg/errlog"
)

type mockCanisterClient struct {
	mock.Mock
}

func (m *mockCanisterClient) ListNFTs(ctx context.Context) (*canister.ListNFTsResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*canister.ListNFTsResponse)
	return resp, args.Error(1)
}

func (m *mockCanisterClient) GetNFT(
	ctx context.Context,
	req *canister.GetNFTRequest,
) (*canister.GetNFTResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*canister.GetNFTResponse)
	return resp, args.Error(1)
}

const e8s = 100_000_000

func record(id, name string, price uint64, createdAt time.Time, traits ...canister.TraitRecord) canister.NFTRecord {
	return canister.NFTRecord{
		TokenID:   id,
		Name:      name,
		Price:     canister.Nat64(price * e8s),
		CreatedAt: canister.Nat64(createdAt.UnixNano()),
		Traits:    traits,
	}
}

func category(value string) canister.TraitRecord {
	return canister.TraitRecord{TraitType: "Category", Value: value}
}

func sampleResponse(now time.Time) *canister.ListNFTsResponse {
	return &canister.ListNFTsResponse{
		NFTs: []canister.NFTRecord{
			record("1", "Sunset", 10, now.Add(-10*24*time.Hour), category("Art")),
			record("2", "Moonrise", 50, now.Add(-24*time.Hour), category("Photo")),
			record("3", "Harbor", 25, now.Add(-72*time.Hour), category("art"),
				canister.TraitRecord{TraitType: "bg", Value: "sea", Rarity: json.RawMessage(`["Legendary","Rare"]`)}),
		},
	}
}

func newService(client canister.Client, cfg service.Config) (*service.Service, *errlog.Sink) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	sink := errlog.NewSink(10)
	return service.NewMarketplaceService(context.Background(), logger, client, cache.NewMemoryCache(), sink, cfg), sink
}

func ids(nfts []discovery.NFT) []string {
	result := make([]string, len(nfts))
	for i, n := range nfts {
		result[i] = n.ID
	}
	return result
}

func TestService_ListNFTs(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		req       *service.ListNFTsRequest
		wantIDs   []string
		wantTotal int
		wantPage  int
		wantSize  int
		wantErr   errlog.Kind
	}{
		{
			name:      "defaults",
			req:       &service.ListNFTsRequest{},
			wantIDs:   []string{"1", "2", "3"},
			wantTotal: 3,
			wantPage:  1,
			wantSize:  24,
		},
		{
			name:      "filter and sort",
			req:       &service.ListNFTsRequest{Category: "art", Sort: "price-high"},
			wantIDs:   []string{"3", "1"},
			wantTotal: 2,
			wantPage:  1,
			wantSize:  24,
		},
		{
			name:      "status new and rarity annotation",
			req:       &service.ListNFTsRequest{Status: "new", Rarity: "legendary"},
			wantIDs:   []string{"3"},
			wantTotal: 1,
			wantPage:  1,
			wantSize:  24,
		},
		{
			name:      "malformed price ignored",
			req:       &service.ListNFTsRequest{MinPrice: "cheap", Sort: "price-low"},
			wantIDs:   []string{"1", "3", "2"},
			wantTotal: 3,
			wantPage:  1,
			wantSize:  24,
		},
		{
			name:      "second page",
			req:       &service.ListNFTsRequest{Sort: "newest", Page: 2, PageSize: 2},
			wantIDs:   []string{"1"},
			wantTotal: 3,
			wantPage:  2,
			wantSize:  2,
		},
		{
			name:      "page past end",
			req:       &service.ListNFTsRequest{Page: 5, PageSize: 2},
			wantIDs:   []string{},
			wantTotal: 3,
			wantPage:  5,
			wantSize:  2,
		},
		{
			name:    "page size too large",
			req:     &service.ListNFTsRequest{PageSize: 1000},
			wantErr: errlog.KindValidation,
		},
		{
			name:    "negative page",
			req:     &service.ListNFTsRequest{Page: -1},
			wantErr: errlog.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mockCanisterClient)
			mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(now), nil).Maybe()

			svc, sink := newService(mockClient, service.Config{CatalogCacheTTL: time.Minute})

			resp, err := svc.ListNFTs(context.Background(), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, errlog.Classify(err))
				require.Len(t, sink.Entries(), 1)
				assert.Equal(t, "ListNFTs", sink.Entries()[0].Operation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(resp.NFTs))
			assert.Equal(t, tt.wantTotal, resp.TotalCount)
			assert.Equal(t, tt.wantPage, resp.Page)
			assert.Equal(t, tt.wantSize, resp.PageSize)
			assert.Empty(t, sink.Entries())

			mockClient.AssertExpectations(t)
		})
	}
}

func TestService_ListNFTs_LeavesRequestUntouched(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil)

	svc, _ := newService(mockClient, service.Config{})

	req := &service.ListNFTsRequest{Sort: "newest"}
	resp, err := svc.ListNFTs(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 24, resp.PageSize)
	assert.Equal(t, &service.ListNFTsRequest{Sort: "newest"}, req)
}

func TestService_ListNFTs_ConvertsWireShape(t *testing.T) {
	created := time.Unix(1_700_000_000, 123)

	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(&canister.ListNFTsResponse{
		NFTs: []canister.NFTRecord{{
			TokenID:     "9",
			Name:        "Dawn",
			Description: []string{"First light"},
			Price:       150_000_000,
			AssetURL:    []string{"https://assets.example/9.png"},
			Owner:       "aaaaa-aa",
			CreatedAt:   canister.Nat64(created.UnixNano()),
			Traits: []canister.TraitRecord{
				{TraitType: "Tier", Value: "Epic"},
				{TraitType: "bg", Value: "red", Rarity: json.RawMessage(`"Mythic"`)},
				{TraitType: "fg", Value: "blue", Rarity: json.RawMessage(`null`)},
			},
		}},
	}, nil)

	svc, _ := newService(mockClient, service.Config{})

	resp, err := svc.ListNFTs(context.Background(), &service.ListNFTsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.NFTs, 1)

	got := resp.NFTs[0]
	assert.Equal(t, "First light", got.Description)
	assert.Equal(t, "https://assets.example/9.png", got.ImageURL)
	assert.Equal(t, int64(1_700_000_000), got.CreatedAt)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("1.5")), got.Price.String())
	assert.Equal(t, discovery.NoRarity(), got.Traits[0].Rarity)
	assert.Equal(t, discovery.SingleRarity("Mythic"), got.Traits[1].Rarity)
	assert.Equal(t, discovery.NoRarity(), got.Traits[2].Rarity)
	assert.Equal(t, "Mythic", discovery.RarityFromTraits(got.Traits))
}

func TestService_CachesCollection(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil).Once()

	svc, _ := newService(mockClient, service.Config{CatalogCacheTTL: time.Minute})
	ctx := context.Background()

	_, err := svc.ListNFTs(ctx, &service.ListNFTsRequest{})
	require.NoError(t, err)
	_, err = svc.ListNFTs(ctx, &service.ListNFTsRequest{Search: "sun"})
	require.NoError(t, err)
	_, err = svc.GetCategories(ctx)
	require.NoError(t, err)

	mockClient.AssertNumberOfCalls(t, "ListNFTs", 1)
}

func TestService_NoCacheWhenTTLZero(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil)

	svc, _ := newService(mockClient, service.Config{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.ListNFTs(ctx, &service.ListNFTsRequest{})
		require.NoError(t, err)
	}

	mockClient.AssertNumberOfCalls(t, "ListNFTs", 3)
}

func TestService_ListNFTs_UpstreamFailure(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(nil, &canister.APIError{
		Code:       "CANISTER_STOPPED",
		Message:    "canister is stopped",
		StatusCode: http.StatusServiceUnavailable,
	})

	svc, sink := newService(mockClient, service.Config{CatalogCacheTTL: time.Minute})

	resp, err := svc.ListNFTs(context.Background(), &service.ListNFTsRequest{})
	require.Error(t, err)
	assert.Nil(t, resp)

	var apiErr *canister.APIError
	assert.True(t, errors.As(err, &apiErr))

	entries := svc.RecentErrors(context.Background())
	require.Len(t, entries, 1)
	assert.Equal(t, errlog.KindUpstream, entries[0].Kind)
	assert.Equal(t, entries, sink.Entries())
}

func TestService_GetCategories(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil)

	svc, _ := newService(mockClient, service.Config{})

	resp, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "photo"}, resp.Categories)
	assert.Equal(t, []string{"Common", "Legendary"}, resp.Rarities)
	assert.True(t, resp.PriceRange.Min.Equal(decimal.NewFromInt(10)))
	assert.True(t, resp.PriceRange.Max.Equal(decimal.NewFromInt(50)))
}

func TestService_GetNFT(t *testing.T) {
	tests := []struct {
		name       string
		req        *service.GetNFTRequest
		clientResp *canister.GetNFTResponse
		clientErr  error
		wantName   string
		wantErr    errlog.Kind
	}{
		{
			name: "success",
			req:  &service.GetNFTRequest{TokenID: "1"},
			clientResp: &canister.GetNFTResponse{
				NFT: []canister.NFTRecord{{TokenID: "1", Name: "Sunset"}},
			},
			wantName: "Sunset",
		},
		{
			name:       "empty opt is not found",
			req:        &service.GetNFTRequest{TokenID: "2"},
			clientResp: &canister.GetNFTResponse{NFT: []canister.NFTRecord{}},
			wantErr:    errlog.KindNotFound,
		},
		{
			name:      "client error",
			req:       &service.GetNFTRequest{TokenID: "3"},
			clientErr: errors.New("client failure"),
			wantErr:   errlog.KindUnknown,
		},
		{
			name:    "missing token id",
			req:     &service.GetNFTRequest{},
			wantErr: errlog.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mockCanisterClient)
			if tt.req.TokenID != "" {
				mockClient.On("GetNFT", mock.Anything, &canister.GetNFTRequest{TokenID: tt.req.TokenID}).
					Return(tt.clientResp, tt.clientErr)
			}

			svc, sink := newService(mockClient, service.Config{})

			got, err := svc.GetNFT(context.Background(), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, errlog.Classify(err))
				assert.Equal(t, 1, sink.Len())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, got.Name)
			}

			mockClient.AssertExpectations(t)
		})
	}
}

func TestService_GetNFT_NotFoundInvalidatesCollection(t *testing.T) {
	tests := []struct {
		name       string
		clientResp *canister.GetNFTResponse
		clientErr  error
	}{
		{
			name:       "empty opt",
			clientResp: &canister.GetNFTResponse{NFT: []canister.NFTRecord{}},
		},
		{
			name: "upstream 404",
			clientErr: &canister.APIError{
				Code:       "NOT_FOUND",
				Message:    "no such token",
				StatusCode: http.StatusNotFound,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mockCanisterClient)
			mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil)
			mockClient.On("GetNFT", mock.Anything, &canister.GetNFTRequest{TokenID: "9"}).
				Return(tt.clientResp, tt.clientErr)

			svc, _ := newService(mockClient, service.Config{CatalogCacheTTL: time.Hour})
			ctx := context.Background()

			_, err := svc.ListNFTs(ctx, &service.ListNFTsRequest{})
			require.NoError(t, err)
			_, err = svc.ListNFTs(ctx, &service.ListNFTsRequest{})
			require.NoError(t, err)
			mockClient.AssertNumberOfCalls(t, "ListNFTs", 1)

			_, err = svc.GetNFT(ctx, &service.GetNFTRequest{TokenID: "9"})
			require.Error(t, err)
			assert.Equal(t, errlog.KindNotFound, errlog.Classify(err))

			_, err = svc.ListNFTs(ctx, &service.ListNFTsRequest{})
			require.NoError(t, err)
			mockClient.AssertNumberOfCalls(t, "ListNFTs", 2)
		})
	}
}

func TestService_GetNFT_OtherErrorsKeepCollection(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil)
	mockClient.On("GetNFT", mock.Anything, mock.Anything).Return(nil, &canister.APIError{
		Code:       "CANISTER_STOPPED",
		StatusCode: http.StatusServiceUnavailable,
	})

	svc, _ := newService(mockClient, service.Config{CatalogCacheTTL: time.Hour})
	ctx := context.Background()

	_, err := svc.ListNFTs(ctx, &service.ListNFTsRequest{})
	require.NoError(t, err)

	_, err = svc.GetNFT(ctx, &service.GetNFTRequest{TokenID: "1"})
	require.Error(t, err)

	_, err = svc.ListNFTs(ctx, &service.ListNFTsRequest{})
	require.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "ListNFTs", 1)
}

func TestService_Health(t *testing.T) {
	mockClient := new(mockCanisterClient)
	mockClient.On("ListNFTs", mock.Anything).Return(sampleResponse(time.Now()), nil)

	svc, _ := newService(mockClient, service.Config{CatalogCacheTTL: time.Minute})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.ListNFTs(ctx, &service.ListNFTsRequest{})
		require.NoError(t, err)
	}

	resp, err := svc.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	require.NotNil(t, resp.Cache)
	assert.Equal(t, int64(1), resp.Cache.Hits)
	assert.Equal(t, int64(1), resp.Cache.Misses)
	assert.Equal(t, int64(1), resp.Cache.Keys)
	assert.Equal(t, service.ErrorLogStats{Entries: 0, Capacity: 10}, resp.ErrorLog)
}
