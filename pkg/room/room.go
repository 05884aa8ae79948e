package room

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/synacor/argon2id"
	"powersuit-server/internal/config"
	"powersuit-server/internal/rng"
	"powersuit-server/pkg/deck"
	"powersuit-server/pkg/playable"
	"powersuit-server/pkg/playable/powersuit"
)

// Room runs a single game of Power Suit
// Every intent and every timer firing is processed on the room's run loop, one at a time
type Room struct {
	Code string

	pinHash  string
	registry *Registry
	game     *powersuit.Game
	cfg      config.Game
	clock    Clock
	logger   logrus.FieldLogger

	// clients is keyed by the client ID, which is also the player ID
	// NOTE: only touched on the run loop
	clients map[string]*Client

	bidTimer  *task
	turnTimer *task
	// pending is the next delayed step: start-round, resolve-trick, score-round or next-round
	pending *task
	idle    *task

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// newRoom creates a room and starts its run loop
func newRoom(registry *Registry, code, pinHash string, capacity int, g rng.Generator) (*Room, error) {
	logger := logrus.WithField("room", code)

	opts := powersuit.DefaultOptions(capacity)
	opts.DealAttempts = registry.cfg.DealAttempts
	opts.AutoBidMin = registry.cfg.AutoBidMin
	opts.AutoBidMax = registry.cfg.AutoBidMax

	game, err := powersuit.NewGame(logger, g, opts)
	if err != nil {
		return nil, err
	}

	r := &Room{
		Code:          code,
		pinHash:       pinHash,
		registry:      registry,
		game:          game,
		cfg:           registry.cfg,
		clock:         registry.clock,
		logger:        logger,
		clients:       make(map[string]*Client),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}

	go r.runLoop()
	if r.cfg.IdleRoomTimeout > 0 {
		r.exec(func() {
			r.idle = r.schedule("idle-room", r.cfg.IdleRoomTimeout, r.reapIfIdle)
		})
	}

	return r, nil
}

// reapIfIdle deletes a room that nobody has joined
// NOTE: must only be called from the run loop
func (r *Room) reapIfIdle() {
	if len(r.game.Seats()) > 0 {
		return
	}

	r.logger.Info("deleting idle room")
	r.registry.Delete(r.Code)
	r.shutdown()
}

func (r *Room) runLoop() {
	r.logger.Debug("starting room run loop")
	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-r.close:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

// exec queues fn onto the run loop
// Work queued after the room has shut down is dropped
func (r *Room) exec(fn func()) {
	select {
	case r.execInRunLoop <- fn:
	case <-r.close:
	}
}

// Capacity returns the number of seats
func (r *Room) Capacity() int {
	return r.game.Capacity()
}

// Join seats the client
// The first seat must supply the room's PIN
func (r *Room) Join(c *Client, name, pin, ctx string) {
	r.exec(func() {
		r.join(c, name, pin, ctx)
	})
}

// Disconnect removes the client from the room
func (r *Room) Disconnect(c *Client) {
	r.exec(func() {
		r.disconnect(c)
	})
}

// ReceivedMessage is called when a seated client sends a game intent
func (r *Room) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	switch msg.Action {
	case "player-ready":
		r.exec(func() {
			r.ready(c, msg.Context)
		})
	case "submit-bid":
		bid, ok := msg.AdditionalData.GetInt("bid")
		if !ok {
			c.SendError(msg.Context, powersuit.ValidationError{Field: "bid", Reason: "bid must be an integer"})
			return
		}

		r.exec(func() {
			r.bid(c, bid, msg.Context)
		})
	case "play-card":
		card := msg.Card
		r.exec(func() {
			r.play(c, card, msg.Context)
		})
	default:
		r.logger.WithFields(logrus.Fields{
			"client": c.String(),
			"action": msg.Action,
		}).Warn("unknown message")
		c.SendError(msg.Context, powersuit.ValidationError{Field: "action", Reason: "unknown action"})
	}
}

// shutdown stops every timer and the run loop
// NOTE: must only be called from the run loop
func (r *Room) shutdown() {
	r.bidTimer.cancel()
	r.turnTimer.cancel()
	r.pending.cancel()
	r.idle.cancel()

	r.closeOnce.Do(func() {
		close(r.close)
	})
}

// NOTE: must only be called from the run loop
func (r *Room) broadcast(res *playable.Response) {
	for _, p := range r.game.Seats() {
		if client, ok := r.clients[p.ID]; ok {
			client.Send(res)
		}
	}
}

// NOTE: must only be called from the run loop
func (r *Room) broadcastExcept(id string, res *playable.Response) {
	for _, p := range r.game.Seats() {
		if client, ok := r.clients[p.ID]; ok && p.ID != id {
			client.Send(res)
		}
	}
}

// NOTE: must only be called from the run loop
func (r *Room) playerName(index int) string {
	seats := r.game.Seats()
	if index < 0 || index >= len(seats) {
		return ""
	}

	return seats[index].Name
}

func (r *Room) join(c *Client, name, pin, ctx string) {
	if c.Room() != nil {
		c.SendError(ctx, ErrAlreadyInRoom)
		return
	}

	if len(r.game.Seats()) == 0 {
		if err := argon2id.Compare(r.pinHash, pin); err != nil {
			r.logger.WithField("client", c.ID).Warn("host join with invalid pin")
			c.SendError(ctx, powersuit.ErrBadHostPin)
			return
		}
	}

	player, err := r.game.AddPlayer(c.ID, name)
	if err != nil {
		c.SendError(ctx, err)
		return
	}

	if !c.claimRoom(r, player.Name) {
		_, _ = r.game.RemovePlayer(c.ID)
		c.SendError(ctx, ErrAlreadyInRoom)
		return
	}

	r.clients[c.ID] = c
	index, _, _ := r.game.Player(c.ID)
	players := roster(r.game.Players())

	r.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"seat":   index,
	}).Info("player joined")

	res := playable.Event(eventJoinedRoom, &joinedRoom{
		RoomID:     r.Code,
		PlayerName: player.Name,
		IsHost:     index == 0,
		Players:    players,
		MaxPlayers: r.game.Capacity(),
	})
	res.Context = ctx
	c.Send(res)

	r.broadcastExcept(c.ID, playable.Event(eventPlayerJoined, &rosterUpdate{
		PlayerName: player.Name,
		Players:    players,
	}))
}

func (r *Room) ready(c *Client, ctx string) {
	_, player, err := r.game.Player(c.ID)
	if err != nil {
		c.SendError(ctx, err)
		return
	}

	allReady, err := r.game.SetReady(c.ID)
	if err != nil {
		c.SendError(ctx, err)
		return
	}

	r.broadcast(playable.Event(eventPlayerReadyUpdate, &rosterUpdate{
		PlayerName: player.Name,
		Players:    roster(r.game.Players()),
	}))

	if allReady {
		r.pending = r.reschedule(r.pending, "start-round", r.cfg.StartDelay, r.startRound)
	}
}

// startRound deals, sends every seat its hand and opens bidding
// NOTE: must only be called from the run loop
func (r *Room) startRound() {
	if !r.game.AllReady() {
		r.logger.Debug("not every seat is ready, round not started")
		return
	}

	if _, err := r.game.StartRound(); err != nil {
		r.logger.WithError(err).Error("could not start round")
		r.broadcast(newErrorResponse("", err))
		r.broadcast(playable.Event(eventPlayerReadyUpdate, &rosterUpdate{
			Players: roster(r.game.Players()),
		}))
		return
	}

	state := r.game.State()
	for i, p := range r.game.Seats() {
		client, ok := r.clients[p.ID]
		if !ok {
			continue
		}

		hand := p.Hand()
		sort.Sort(hand)

		client.Send(playable.Event(eventRoundStarted, &roundStarted{
			Hand:        hand,
			TrumpSuit:   state.TrumpSuit,
			RoundNumber: state.RoundNumber,
			PlayerIndex: i,
		}))
	}

	r.bidTimer = r.reschedule(r.bidTimer, "bid-deadline", r.cfg.BidTimeout, r.onBidDeadline)
}

func (r *Room) bid(c *Client, bid int, ctx string) {
	allIn, err := r.game.SubmitBid(c.ID, bid)
	if err != nil {
		c.SendError(ctx, err)
		return
	}

	c.Send(playable.OK(ctx))

	if allIn {
		r.bidTimer.cancel()
		r.startPlaying()
	}
}

// NOTE: must only be called from the run loop
func (r *Room) onBidDeadline() {
	filled := r.game.AutoBid()
	for _, p := range filled {
		bid, _ := p.Bid()
		r.logger.WithFields(logrus.Fields{
			"player": p.Name,
			"bid":    bid,
		}).Debug("bid assigned at deadline")
	}

	r.startPlaying()
}

// startPlaying closes bidding and starts the first turn
// NOTE: must only be called from the run loop
func (r *Room) startPlaying() {
	index, err := r.game.StartPlaying()
	if err != nil {
		r.logger.WithError(err).Error("could not start playing")
		return
	}

	r.broadcast(playable.Event(eventBiddingComplete, &biddingComplete{
		Bids:           bids(r.game.Seats()),
		StartingPlayer: r.playerName(index),
	}))

	r.nextTurn(index, "")
}

// nextTurn announces the turn and arms its deadline
// NOTE: must only be called from the run loop
func (r *Room) nextTurn(index int, lead deck.Suit) {
	r.broadcast(playable.Event(eventNextTurn, &nextTurn{
		CurrentPlayerIndex: index,
		CurrentPlayerName:  r.playerName(index),
		LeadSuit:           leadSuit(lead),
	}))

	r.turnTimer = r.reschedule(r.turnTimer, "turn-deadline", r.cfg.TurnTimeout, r.onTurnDeadline)
}

func (r *Room) play(c *Client, card *deck.Card, ctx string) {
	res, err := r.game.PlayCard(c.ID, card)
	if err != nil {
		c.SendError(ctx, err)
		return
	}

	r.turnTimer.cancel()
	r.afterPlay(res)
}

// NOTE: must only be called from the run loop
func (r *Room) onTurnDeadline() {
	res, err := r.game.AutoPlay()
	if err != nil {
		r.logger.WithError(err).Warn("turn deadline fired with nothing to play")
		return
	}

	r.afterPlay(res)
}

// NOTE: must only be called from the run loop
func (r *Room) afterPlay(res *powersuit.PlayResult) {
	if !res.Skipped {
		r.broadcast(playable.Event(eventCardPlayed, &cardPlayed{
			PlayerName:   res.Player.Name,
			PlayerIndex:  res.PlayerIndex,
			Card:         res.Card,
			CurrentTrick: res.Trick,
			AutoPlayed:   res.AutoPlayed,
		}))
	}

	if res.TrickComplete {
		r.pending = r.reschedule(r.pending, "resolve-trick", r.cfg.TrickDisplayDelay, r.resolveTrick)
		return
	}

	r.nextTurn(res.NextPlayerIndex, res.LeadSuit)
}

// NOTE: must only be called from the run loop
func (r *Room) resolveTrick() {
	res, err := r.game.ResolveTrick()
	if err != nil {
		r.logger.WithError(err).Error("could not resolve trick")
		return
	}

	r.broadcast(playable.Event(eventTrickComplete, &trickComplete{
		WinnerName:   res.Winner.Name,
		WinnerIndex:  res.WinnerIndex,
		WinningCard:  res.WinningCard,
		TrickHistory: res.TrickHistory,
	}))

	if res.RoundOver {
		r.pending = r.reschedule(r.pending, "score-round", r.cfg.RoundEndDelay, r.scoreRound)
		return
	}

	r.broadcast(playable.Event(eventNextTrick, &nextTrick{
		TrickNumber:        res.NextTrickNumber,
		CurrentPlayerIndex: res.NextPlayerIndex,
		CurrentPlayerName:  r.playerName(res.NextPlayerIndex),
	}))

	r.turnTimer = r.reschedule(r.turnTimer, "turn-deadline", r.cfg.TurnTimeout, r.onTurnDeadline)
}

// NOTE: must only be called from the run loop
func (r *Room) scoreRound() {
	lines, err := r.game.ScoreRound()
	if err != nil {
		r.logger.WithError(err).Error("could not score round")
		return
	}

	r.broadcast(playable.Event(eventRoundComplete, &roundComplete{
		Scores: lines,
	}))

	if r.game.AllReady() {
		r.pending = r.reschedule(r.pending, "next-round", r.cfg.NextRoundDelay, r.startRound)
	}
}

func (r *Room) disconnect(c *Client) {
	delete(r.clients, c.ID)

	dep, err := r.game.RemovePlayer(c.ID)
	if err != nil {
		return
	}

	r.logger.WithFields(logrus.Fields{
		"player":  dep.Player.Name,
		"vacated": dep.Vacated,
	}).Info("player left")

	r.broadcast(playable.Event(eventPlayerLeft, &rosterUpdate{
		PlayerName: dep.Player.Name,
		Players:    roster(r.game.Players()),
	}))

	if len(r.game.Players()) == 0 {
		r.registry.Delete(r.Code)
		r.shutdown()
		return
	}

	switch {
	case !dep.Vacated:
		// a start-round or next-round step can no longer succeed
		if r.game.Phase() == powersuit.PhaseWaiting || r.game.Phase() == powersuit.PhaseScoring {
			r.pending.cancel()
		}
	case dep.BiddingComplete:
		r.bidTimer.cancel()
		r.startPlaying()
	case dep.TrickComplete:
		r.turnTimer.cancel()
		r.pending = r.reschedule(r.pending, "resolve-trick", r.cfg.TrickDisplayDelay, r.resolveTrick)
	case dep.TurnAdvanced:
		state := r.game.State()
		r.nextTurn(state.CurrentPlayerIndex, state.LeadSuit)
	}
}
