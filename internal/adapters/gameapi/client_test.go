package gameapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/hksl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestJSON = `{
  "items": {
    "bbc_seed": {"name": "Bractus Seed"},
    "bbc_essence": {"name": "Bread Essence"},
    "nest_egg": {"name": "Nest Egg", "usable": true}
  },
  "plant_titles": {"dirt": "Dirt", "bbc": "Bractus Loaf"},
  "plant_recipes": {
    "dirt": [{"needs": {"bbc_seed": 1}, "change_plant_to": "bbc"}],
    "bbc": [
      {"needs": {"nest_egg": 2, "bbc_seed": 3}, "make_item": "bbc_essence"},
      {"needs": {}, "change_plant_to": "dirt"}
    ]
  }
}`

var alice = domain.Credentials{Username: "alice", Password: "hunter2"}

func newClient(server *httptest.Server) Client {
	return Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestManifestDecodesRecipesInSourceOrder(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/manifest", r.URL.Path)
		_, _, hasAuth := r.BasicAuth()
		assert.False(t, hasAuth)
		_, _ = w.Write([]byte(manifestJSON))
	}))
	t.Cleanup(server.Close)

	manifest, err := newClient(server).Manifest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.ItemInfo{Name: "Nest Egg", Usable: true}, manifest.Items["nest_egg"])
	assert.Equal(t, "Bractus Loaf", manifest.PlantTitles["bbc"])

	bbc := manifest.RecipesFor("bbc")
	require.Len(t, bbc, 2)
	assert.Equal(t, []domain.Need{{Item: "nest_egg", Count: 2}, {Item: "bbc_seed", Count: 3}}, bbc[0].Needs)
	assert.Equal(t, domain.MakeItem{Item: "bbc_essence"}, bbc[0].Output)
	assert.Empty(t, bbc[1].Needs)
	assert.Equal(t, domain.ChangePlant{Plant: domain.PlantDirt}, bbc[1].Output)
	assert.True(t, manifest.RecipesFor(domain.PlantDirt)[0].IsPlanting())
}

func TestManifestRejectsAmbiguousRecipe(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":{},"plant_titles":{},"plant_recipes":{"dirt":[{"needs":{},"make_item":"a","change_plant_to":"b"}]}}`))
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server).Manifest(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidRecipe)
}

func TestSteadDecodesPlotsAndOrderedInventory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getstead", r.URL.Path)
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "alice", username)
		assert.Equal(t, "hunter2", password)

		_, _ = w.Write([]byte(`{
		  "plants": [
		    {"kind": "bbc", "tt_yield": 1500, "statuses": [{"kind": "powder_t1"}]},
		    {"kind": "dirt"}
		  ],
		  "inv": {"zeta_seed": 1, "alpha_seed": 0, "bbc_seed": 12}
		}`))
	}))
	t.Cleanup(server.Close)

	stead, err := newClient(server).Stead(context.Background(), alice)
	require.NoError(t, err)

	require.Len(t, stead.Plots, 2)
	assert.Equal(t, domain.PlantKind("bbc"), stead.Plots[0].Kind)
	assert.Equal(t, 1500*time.Millisecond, stead.Plots[0].TimeToYield)
	assert.Equal(t, []domain.ItemID{"powder_t1"}, stead.Plots[0].Statuses)
	assert.Zero(t, stead.Plots[1].TimeToYield)
	assert.Equal(t, domain.Inventory{
		{Item: "zeta_seed", Count: 1},
		{Item: "alpha_seed", Count: 0},
		{Item: "bbc_seed", Count: 12},
	}, stead.Inventory)
}

func TestSteadRetriesOnceOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"plants":[],"inv":{}}`))
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server).Stead(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSteadGivesUpAfterSecondFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server).Stead(context.Background(), alice)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSteadDoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server).Stead(context.Background(), alice)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestMutationsSendExpectedBodies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantAuth bool
		wantBody map[string]any
		call     func(Client) (domain.Verdict, error)
	}{
		{
			name:     "testauth",
			path:     "/testauth",
			wantAuth: true,
			wantBody: map[string]any{},
			call: func(c Client) (domain.Verdict, error) {
				return c.TestAuth(context.Background(), alice)
			},
		},
		{
			name:     "signup",
			path:     "/signup",
			wantBody: map[string]any{"user": "alice", "pass": "hunter2"},
			call: func(c Client) (domain.Verdict, error) {
				return c.Signup(context.Background(), alice)
			},
		},
		{
			name:     "gib",
			path:     "/gib",
			wantAuth: true,
			wantBody: map[string]any{"person": "bob", "item": "bbc_seed", "amount": float64(3)},
			call: func(c Client) (domain.Verdict, error) {
				return c.Gib(context.Background(), alice, domain.Transfer{Recipient: "bob", Item: "bbc_seed", Amount: 3})
			},
		},
		{
			name:     "useitem",
			path:     "/useitem",
			wantAuth: true,
			wantBody: map[string]any{"item": "nest_egg"},
			call: func(c Client) (domain.Verdict, error) {
				return resultVerdict(c.UseItem(context.Background(), alice, "nest_egg"))
			},
		},
		{
			name:     "craft",
			path:     "/craft",
			wantAuth: true,
			wantBody: map[string]any{"plot_index": float64(2), "recipe_index": float64(1)},
			call: func(c Client) (domain.Verdict, error) {
				return resultVerdict(c.Craft(context.Background(), alice, 2, 1))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				_, _, hasAuth := r.BasicAuth()
				assert.Equal(t, tt.wantAuth, hasAuth)

				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, tt.wantBody, body)

				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			t.Cleanup(server.Close)

			verdict, err := tt.call(newClient(server))
			require.NoError(t, err)
			assert.True(t, verdict.OK)
		})
	}
}

func TestMutationHonoursVerdictOnErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"msg":"who dat?"}`))
	}))
	t.Cleanup(server.Close)

	verdict, err := newClient(server).Gib(context.Background(), alice, domain.Transfer{Recipient: "zed", Item: "bbc_seed", Amount: 1})
	require.NoError(t, err)
	assert.False(t, verdict.OK)
	assert.Equal(t, domain.MsgRecipientNotFound, verdict.Msg)
}

func resultVerdict(result domain.Result, err error) (domain.Verdict, error) {
	if result.Verdict == nil {
		return domain.Verdict{}, err
	}
	return *result.Verdict, err
}

func TestActionsKeepOpaqueResultBody(t *testing.T) {
	t.Parallel()

	const body = `[{"kind":"bbc_seed","amount":2}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := newClient(server)

	used, err := client.UseItem(context.Background(), alice, "nest_egg")
	require.NoError(t, err)
	assert.Equal(t, body, used.Body)
	assert.Nil(t, used.Verdict)
	assert.False(t, used.Rejected())

	crafted, err := client.Craft(context.Background(), alice, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, body, crafted.Body)
	assert.Nil(t, crafted.Verdict)
}

func TestActionsDecodeVerdictWhenPresent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"msg":"you can't afford that!"}`))
	}))
	t.Cleanup(server.Close)

	result, err := newClient(server).Craft(context.Background(), alice, 0, 0)
	require.NoError(t, err)
	require.NotNil(t, result.Verdict)
	assert.True(t, result.Rejected())
	assert.Equal(t, domain.MsgCannotAfford, result.Verdict.Msg)
}

func TestMutationIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`internal error`))
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server).Craft(context.Background(), alice, 0, 0)
	require.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := newClient(server)
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.TestAuth(context.Background(), alice)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestBuildAPIURL(t *testing.T) {
	t.Parallel()

	for _, base := range []string{"https://misguided.enterprises/hkgi", "https://misguided.enterprises/hkgi/"} {
		endpoint, err := buildAPIURL(base, "getstead")
		require.NoError(t, err)
		assert.Equal(t, "https://misguided.enterprises/hkgi/getstead", endpoint)
	}

	_, err := buildAPIURL("ftp://example.com", "manifest")
	require.Error(t, err)
	_, err = buildAPIURL("", "manifest")
	require.Error(t, err)
}

func TestOrderedCountsRejectsInvalidCounts(t *testing.T) {
	t.Parallel()

	var counts orderedCounts
	require.Error(t, json.Unmarshal([]byte(`{"a": -1}`), &counts))
	require.Error(t, json.Unmarshal([]byte(`{"a": 1.5}`), &counts))
	require.Error(t, json.Unmarshal([]byte(`[1]`), &counts))
	require.NoError(t, json.Unmarshal([]byte(`null`), &counts))
	assert.Nil(t, counts)
}
