package npc_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/narrate"
	"github.com/cory-johannsen/adventure/internal/game/npc"
)

func newTestManager(t testing.TB) (*npc.Manager, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zaptest.NewLogger(t)
	return npc.NewManager(narrate.New(&buf, logger), logger), &buf
}

func newDave(mgr *npc.Manager) *npc.Enemy {
	dave := mgr.Spawn("Dave", "A smelly zombie")
	dave.SetConversation("What's up, dude! I'm hungry.")
	dave.SetWeakness("cheese")
	return dave
}

func TestSpawn_SetsNameAndDescription(t *testing.T) {
	mgr, _ := newTestManager(t)
	dave := mgr.Spawn("Dave", "A smelly zombie")
	assert.Equal(t, "Dave", dave.Name())
	assert.Equal(t, "A smelly zombie", dave.Description())

	_, ok := dave.Conversation()
	assert.False(t, ok)
	_, ok = dave.Weakness()
	assert.False(t, ok)
}

func TestEnemy_Setters(t *testing.T) {
	mgr, _ := newTestManager(t)
	dave := newDave(mgr)

	conv, ok := dave.Conversation()
	require.True(t, ok)
	assert.Equal(t, "What's up, dude! I'm hungry.", conv)

	weak, ok := dave.Weakness()
	require.True(t, ok)
	assert.Equal(t, "cheese", weak)
}

func TestEnemy_Talk(t *testing.T) {
	mgr, out := newTestManager(t)
	dave := newDave(mgr)

	line := dave.Talk()
	assert.Equal(t, "[Dave says]: What's up, dude! I'm hungry.", line)
	assert.Equal(t, line+"\n", out.String())
}

func TestEnemy_TalkWithoutConversation(t *testing.T) {
	mgr, out := newTestManager(t)
	dave := mgr.Spawn("Dave", "A smelly zombie")

	assert.Equal(t, "[Dave says]: ", dave.Talk())
	assert.Equal(t, "[Dave says]: \n", out.String())
}

func TestEnemy_FightWrongThenRight(t *testing.T) {
	mgr, out := newTestManager(t)
	dave := newDave(mgr)

	assert.False(t, dave.Fight("book"))
	assert.Equal(t, "Dave crushes you, puny adventurer!\n", out.String())
	assert.Equal(t, int64(0), dave.Defeated())

	out.Reset()
	assert.True(t, dave.Fight("cheese"))
	assert.Equal(t, "You fend Dave off with the cheese\n", out.String())
	assert.Equal(t, int64(1), dave.Defeated())
}

func TestEnemy_FightIsExactMatch(t *testing.T) {
	mgr, _ := newTestManager(t)
	dave := newDave(mgr)

	assert.False(t, dave.Fight("Cheese"))
	assert.False(t, dave.Fight("chees"))
	assert.False(t, dave.Fight(" cheese"))
	assert.Equal(t, int64(0), dave.Defeated())
}

func TestEnemy_FightWithoutWeakness(t *testing.T) {
	mgr, _ := newTestManager(t)
	ghost := mgr.Spawn("Ghost", "Barely there")

	assert.False(t, ghost.Fight(""))
	assert.False(t, ghost.Fight("cheese"))
	assert.Equal(t, int64(0), ghost.Defeated())
}

func TestEnemy_FightEmptyWeakness(t *testing.T) {
	mgr, _ := newTestManager(t)
	ghost := mgr.Spawn("Ghost", "Barely there")
	ghost.SetWeakness("")

	assert.True(t, ghost.Fight(""))
	assert.Equal(t, int64(1), ghost.Defeated())
}

func TestEnemy_FightWith(t *testing.T) {
	mgr, _ := newTestManager(t)
	dave := newDave(mgr)

	book := item.New("book")
	cheese := item.New("cheese")
	cheese.SetDescription("A large and smelly block of cheese")

	assert.False(t, dave.FightWith(book))
	assert.True(t, dave.FightWith(cheese))
}

func TestEnemy_DefeatedIsShared(t *testing.T) {
	mgr, _ := newTestManager(t)
	dave := newDave(mgr)
	tabitha := mgr.Spawn("Tabitha", "An enormous spider with countless eyes and furry legs.")
	tabitha.SetWeakness("book")

	require.True(t, dave.Fight("cheese"))
	assert.Equal(t, int64(1), tabitha.Defeated())

	require.True(t, tabitha.Fight("book"))
	assert.Equal(t, int64(2), dave.Defeated())
	assert.Equal(t, int64(2), mgr.Counters().Defeated())
}

func TestEnemy_RepeatedFightsCountEachTime(t *testing.T) {
	mgr, _ := newTestManager(t)
	dave := newDave(mgr)

	dave.Fight("cheese")
	dave.Fight("cheese")
	assert.Equal(t, int64(2), dave.Defeated())
}

func TestEnemy_Describe(t *testing.T) {
	mgr, out := newTestManager(t)
	dave := newDave(mgr)

	assert.Equal(t, "Dave is here!\nA smelly zombie", dave.Describe())
	assert.Empty(t, out.String(), "describe must not narrate")
}

func TestEnemy_FightLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	mgr := npc.NewManager(nil, zap.New(core))
	dave := newDave(mgr)

	dave.Fight("book")
	dave.Fight("cheese")

	assert.Equal(t, 1, logs.FilterMessage("fight lost").Len())
	defeated := logs.FilterMessage("enemy defeated").All()
	require.Len(t, defeated, 1)
	assert.Equal(t, "Dave", defeated[0].ContextMap()["enemy"])
	assert.Equal(t, int64(1), defeated[0].ContextMap()["defeated"])
}

func TestPropertyFightSucceedsIffNameMatches(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mgr := npc.NewManager(nil, nil)
		weakness := rapid.StringMatching(`[a-c]{1,3}`).Draw(t, "weakness")
		attempt := rapid.StringMatching(`[a-c]{1,3}`).Draw(t, "attempt")

		e := mgr.Spawn("E", "An enemy")
		e.SetWeakness(weakness)

		won := e.Fight(attempt)
		assert.Equal(t, attempt == weakness, won)
		if won {
			assert.Equal(t, int64(1), e.Defeated())
		} else {
			assert.Equal(t, int64(0), e.Defeated())
		}
	})
}
