// room/room.go
package room

import (
	"fmt"
	"sync"
	"time"

	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/logger"
	"github.com/railbound/gameserver/session"
	"github.com/railbound/gameserver/state"
	"github.com/railbound/gameserver/timer"
)

// RoomStatus 表示房间的业务状态，例如等待、游戏中等
type RoomStatus int

const (
	StatusIdle RoomStatus = iota
	StatusWaiting
	StatusGaming
	StatusSettlement
)

// Options carries the shared dependencies a room needs to run a match.
type Options struct {
	MinPlayers  int
	MaxPlayers  int
	TurnTimeout time.Duration
	Engine      *game.Engine
	Board       *game.Board
	Broadcaster Broadcaster
	Timers      *timer.TimerManager
	Sink        MatchSink
	Seed        int64 // 0 means time-based
}

// Room 是游戏房间的核心结构。一个房间对应一局比赛，房间 ID 同时
// 作为引擎里的会话 ID。
type Room struct {
	ID           string
	Name         string
	Status       RoomStatus
	Players      map[string]*session.Session // sessionID -> session
	StateMachine state.StateMachine
	CreatedAt    time.Time

	opts      Options
	joinOrder []string // 座位顺序按加入先后
	startedAt time.Time

	statusMutex sync.RWMutex
	playerMutex sync.RWMutex
	ticker      *time.Ticker
	closeChan   chan bool
	closeOnce   sync.Once
}

// NewRoom 创建一个新房间并启动其主循环
func NewRoom(id, name string, opts Options) *Room {
	room := &Room{
		ID:        id,
		Name:      name,
		Status:    StatusIdle,
		Players:   make(map[string]*session.Session),
		CreatedAt: time.Now(),
		closeChan: make(chan bool),
		opts:      opts,
	}

	// 初始化状态机，将房间自身(room)作为上下文传入
	initialState := state.NewWaitingState(room)
	room.StateMachine = state.NewBaseStateMachine(initialState)
	room.SetStatus(StatusWaiting)

	// 启动房间心跳
	room.ticker = time.NewTicker(100 * time.Millisecond) // 10 FPS
	go room.loop()

	return room
}

// --- 实现 state.RoomContext 接口 ---

// GetID 返回房间ID
func (r *Room) GetID() string {
	return r.ID
}

// GetMinPlayers returns the player count needed to start a match.
func (r *Room) GetMinPlayers() int {
	return r.opts.MinPlayers
}

// GetMaxPlayers returns the maximum number of players in the room.
func (r *Room) GetMaxPlayers() int {
	return r.opts.MaxPlayers
}

// GetPlayers 获取房间中的所有玩家，返回的map值为 state.Player 接口
func (r *Room) GetPlayers() map[string]state.Player {
	r.playerMutex.RLock()
	defer r.playerMutex.RUnlock()

	// 返回副本以避免并发修改
	players := make(map[string]state.Player)
	for k, v := range r.Players {
		players[k] = v // session.Session 实现了 state.Player 接口
	}
	return players
}

// ChangeState 改变房间的状态机状态
func (r *Room) ChangeState(newState state.State) error {
	return r.StateMachine.ChangeState(newState)
}

// Broadcast sends a message to all players in the room.
func (r *Room) Broadcast(msgID uint16, data []byte) error {
	return r.opts.Broadcaster.BroadcastToRoom(r.ID, msgID, data)
}

// SendTo sends a message to a single seated player.
func (r *Room) SendTo(playerID string, msgID uint16, data []byte) error {
	r.playerMutex.RLock()
	s, exists := r.Players[playerID]
	r.playerMutex.RUnlock()
	if !exists {
		return fmt.Errorf("player %s not in room %s", playerID, r.ID)
	}
	return s.Send(msgID, data)
}

// Engine returns the shared rules engine.
func (r *Room) Engine() *game.Engine {
	return r.opts.Engine
}

// GameID 比赛会话 ID 与房间 ID 一致
func (r *Room) GameID() string {
	return r.ID
}

// StartMatch seats the joined players in join order and opens the match
// session in the rules engine.
func (r *Room) StartMatch() error {
	r.playerMutex.RLock()
	seats := make([]game.Seat, 0, len(r.joinOrder))
	for _, id := range r.joinOrder {
		s, exists := r.Players[id]
		if !exists {
			continue // 玩家在开局前离开
		}
		seats = append(seats, game.Seat{PlayerID: s.ID, Name: s.GetName()})
	}
	r.playerMutex.RUnlock()

	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if _, err := r.opts.Engine.CreateSession(r.ID, r.opts.Board, seats, seed); err != nil {
		return fmt.Errorf("failed to open match session: %w", err)
	}

	r.startedAt = time.Now()
	r.SetStatus(StatusGaming)
	logger.Log.Infof("Room %s started a match with %d players", r.ID, len(seats))
	return nil
}

// FinishMatch persists the scoreboard and releases the engine session.
func (r *Room) FinishMatch(scores []game.PlayerScore) {
	r.SetStatus(StatusSettlement)
	duration := time.Since(r.startedAt)

	if r.opts.Sink != nil {
		if err := r.opts.Sink.RecordMatch(r.ID, scores, duration); err != nil {
			logger.Log.Errorf("Room %s failed to record match: %v", r.ID, err)
		}
	}
	r.opts.Engine.CloseSession(r.ID)
}

// TurnTimeout 单回合允许的最长时间，<=0 表示不限时
func (r *Room) TurnTimeout() time.Duration {
	return r.opts.TurnTimeout
}

// ScheduleTimer schedules a one-shot callback on the shared timer wheel.
func (r *Room) ScheduleTimer(delay time.Duration, fn func()) int64 {
	return r.opts.Timers.AddTimer(delay, 0, fn)
}

// CancelTimer cancels a pending callback.
func (r *Room) CancelTimer(id int64) {
	r.opts.Timers.RemoveTimer(id)
}

// --- 房间核心逻辑 ---

// AddPlayer 添加一个玩家到房间
func (r *Room) AddPlayer(s *session.Session) bool {
	r.playerMutex.Lock()
	defer r.playerMutex.Unlock()

	if len(r.Players) >= r.opts.MaxPlayers {
		return false
	}
	if r.GetStatus() != StatusWaiting {
		return false // 开局后不再接受新玩家
	}

	r.Players[s.ID] = s
	r.joinOrder = append(r.joinOrder, s.ID)
	s.RoomID = r.ID
	return true
}

// RemovePlayer 从房间移除一个玩家
func (r *Room) RemovePlayer(sessionID string) {
	r.playerMutex.Lock()
	defer r.playerMutex.Unlock()

	if player, exists := r.Players[sessionID]; exists {
		player.RoomID = ""
		delete(r.Players, sessionID)
		for i, id := range r.joinOrder {
			if id == sessionID {
				r.joinOrder = append(r.joinOrder[:i], r.joinOrder[i+1:]...)
				break
			}
		}
	}
}

// GetPlayer 获取单个玩家
func (r *Room) GetPlayer(sessionID string) (*session.Session, bool) {
	r.playerMutex.RLock()
	defer r.playerMutex.RUnlock()

	player, exists := r.Players[sessionID]
	return player, exists
}

// GetSessions returns a slice of all sessions in the room (thread-safe).
func (r *Room) GetSessions() []*session.Session {
	r.playerMutex.RLock()
	defer r.playerMutex.RUnlock()

	sessions := make([]*session.Session, 0, len(r.Players))
	for _, s := range r.Players {
		sessions = append(sessions, s)
	}
	return sessions
}

// HandleAction 将玩家动作转交给当前状态
func (r *Room) HandleAction(sessionID string, actionData []byte) error {
	player, exists := r.GetPlayer(sessionID)
	if !exists {
		return fmt.Errorf("player %s not in room %s", sessionID, r.ID)
	}
	return r.StateMachine.GetCurrentState().HandleAction(player, actionData)
}

// SetStatus 设置房间的业务状态
func (r *Room) SetStatus(status RoomStatus) {
	r.statusMutex.Lock()
	defer r.statusMutex.Unlock()
	r.Status = status
}

// GetStatus 获取房间的业务状态
func (r *Room) GetStatus() RoomStatus {
	r.statusMutex.RLock()
	defer r.statusMutex.RUnlock()
	return r.Status
}

// loop 是房间的主循环，定时驱动状态更新
func (r *Room) loop() {
	for {
		select {
		case <-r.ticker.C:
			r.Update()
		case <-r.closeChan:
			r.ticker.Stop()
			return
		}
	}
}

// Update 由主循环调用，驱动状态机更新
func (r *Room) Update() {
	if r.StateMachine != nil {
		currentState := r.StateMachine.GetCurrentState()
		if currentState != nil {
			currentState.OnUpdate()
		}
	}
}

// Close 关闭房间，停止主循环
func (r *Room) Close() {
	r.closeOnce.Do(func() {
		close(r.closeChan)
	})
}

// --- 房间管理器 ---

// Manager 管理所有房间
type Manager struct {
	rooms map[string]*Room
	mutex sync.RWMutex
}

// NewRoomManager 创建一个新的房间管理器
func NewRoomManager() *Manager {
	return &Manager{
		rooms: make(map[string]*Room),
	}
}

// CreateRoom 创建一个新房间并添加到管理器
func (m *Manager) CreateRoom(id, name string, opts Options) *Room {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	room := NewRoom(id, name, opts)
	m.rooms[id] = room
	return room
}

// RemoveRoom 从管理器中移除并关闭一个房间
func (m *Manager) RemoveRoom(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if room, exists := m.rooms[id]; exists {
		room.Close()
		delete(m.rooms, id)
	}
}

// GetRoom 从管理器中获取一个房间
func (m *Manager) GetRoom(id string) (*Room, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	room, exists := m.rooms[id]
	return room, exists
}

// Count 当前房间数
func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms)
}

// FindAvailableRoom 查找一个可用的房间
func (m *Manager) FindAvailableRoom() *Room {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, room := range m.rooms {
		if len(room.Players) < room.opts.MaxPlayers && room.GetStatus() == StatusWaiting {
			return room
		}
	}
	return nil
}
