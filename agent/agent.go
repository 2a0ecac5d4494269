package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/dustin/go-humanize"

	"github.com/nstehr/orrery/orrery-core/ipc"
	"github.com/nstehr/orrery/orrery-core/planner"
)

// Agent owns the decision-making for a single AI realm session.
type Agent struct {
	Conn   *ipc.Connection
	Realm  int
	Name   string
	Engine *planner.Engine

	baseSeed uint64
	seed     uint64
	last     *stateSnapshot
}

func New(conn *ipc.Connection, engine *planner.Engine, seed uint64) *Agent {
	return &Agent{Conn: conn, Engine: engine, baseSeed: seed, seed: seed}
}

// HandleHello completes the handshake so the host knows the sidecar is ready.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Realm = hello.Realm
	a.Name = hello.Name
	a.seed = sessionSeed(a.baseSeed, hello.Game)
	a.last = nil
	if a.Conn != nil {
		a.Conn.Realm = hello.Name
	}
	slog.Info("realm identified", "realm", a.Realm, "name", a.Name, "game", hello.Game)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleTurn runs the planner over every planet of the realm and answers
// with the orders.
func (a *Agent) HandleTurn(env ipc.Envelope) (*ipc.Envelope, error) {
	var turn ipc.TurnMessage
	if err := json.Unmarshal(env.Data, &turn); err != nil {
		return nil, fmt.Errorf("unmarshal turn: %w", err)
	}
	if a.Realm != 0 && turn.Realm.Index != a.Realm {
		return nil, fmt.Errorf("turn for realm %d on session of realm %d", turn.Realm.Index, a.Realm)
	}

	orders := a.PlayTurn(&turn)
	resp, err := ipc.NewEnvelope(ipc.TypeOrders, orders)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PlayTurn decides for every planet the realm owns. Planets are processed in
// the order the host lists them; each gets its own seeded random source.
func (a *Agent) PlayTurn(turn *ipc.TurnMessage) ipc.OrdersMessage {
	realm, world := &turn.Realm, &turn.World
	orders := ipc.OrdersMessage{Realm: realm.Index, Turn: world.Turn}

	snap := takeSnapshot(turn)
	for _, ev := range detectEvents(snap, a.last) {
		slog.Info("turn event", "realm", realm.Name, "kind", ev.Kind, "turn", ev.Turn, "detail", ev.Detail)
	}
	a.last = &snap

	if realm.Human {
		slog.Warn("turn for a human realm ignored", "realm", realm.Name)
		orders.Credits = realm.Credits
		return orders
	}

	startCredits := realm.Credits
	seen := make(map[string]bool)
	rushes := 0
	for _, p := range world.Planets {
		if p.Owner != realm.Index {
			continue
		}
		rng := rand.New(rand.NewSource(PlanetSeed(a.seed, realm.Index, world.Turn, p.Name)))
		d := a.Engine.Process(p, realm, world, rng)

		po := ipc.PlanetOrders{
			Planet:       d.Planet,
			Construction: d.Selected,
			Rushed:       string(d.Rush),
			Removed:      d.Removed,
			Labor:        d.Labor,
			Tax:          d.Tax,
		}
		if d.Rush != planner.RushNone {
			rushes++
		}
		orders.Planets = append(orders.Planets, po)

		for _, m := range append(d.Created, d.Bound) {
			if m == nil || seen[m.ID.String()] {
				continue
			}
			seen[m.ID.String()] = true
			orders.Missions = append(orders.Missions, m)
		}
	}
	orders.Credits = realm.Credits

	slog.Info("turn planned",
		"realm", realm.Name,
		"turn", world.Turn,
		"planets", len(orders.Planets),
		"missions", len(orders.Missions),
		"rushes", rushes,
		"credits", humanize.Comma(int64(realm.Credits)),
		"spent", humanize.Comma(int64(startCredits-realm.Credits)),
		"phase", world.Length,
	)
	return orders
}
