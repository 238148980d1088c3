package server

import (
	"encoding/json"
	"net/http"
	"net/rpc"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/railbound/gameserver/broadcast"
	"github.com/railbound/gameserver/config"
	"github.com/railbound/gameserver/game"
	"github.com/railbound/gameserver/logger"
	"github.com/railbound/gameserver/monitor"
	"github.com/railbound/gameserver/network"
	"github.com/railbound/gameserver/persistence"
	"github.com/railbound/gameserver/room"
	gameserver_rpc "github.com/railbound/gameserver/rpc"
	"github.com/railbound/gameserver/services"
	"github.com/railbound/gameserver/session"
	"github.com/railbound/gameserver/timer"
)

type GameServer struct {
	addr           string
	upgrader       websocket.Upgrader
	engine         *game.Engine
	board          *game.Board
	gameCfg        config.GameConfig
	roomManager    *room.Manager
	sessionManager *session.Manager
	matchService   *services.MatchService
	broadcaster    broadcast.Broadcaster
	timers         *timer.TimerManager
	monitor        *monitor.Monitor
	rpcServer      *gameserver_rpc.Server
	mutex          sync.Mutex
	shutdownChan   chan struct{}
}

func NewGameServer(cfg *config.Config, db persistence.Database, mon *monitor.Monitor) *GameServer {
	s := &GameServer{
		addr:           cfg.Server.HTTPAddress,
		engine:         game.NewEngine(game.NewMemoryStore(), game.WithRules(rulesFromConfig(cfg.Game))),
		board:          game.DefaultBoard(),
		gameCfg:        cfg.Game,
		roomManager:    room.NewRoomManager(),
		sessionManager: session.NewManager(),
		matchService:   services.NewMatchService(db),
		timers:         timer.NewTimerManager(),
		monitor:        mon,
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有跨域请求
			},
		},
	}

	// 初始化广播器
	s.broadcaster = broadcast.NewRoomBroadcaster(s.roomManager, s.sessionManager)

	// 初始化RPC服务器
	rpcServer, err := gameserver_rpc.NewServer(cfg.Server.RPCAddress)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer

	// 注册RPC服务
	gameService := gameserver_rpc.NewGameService(s.matchService)
	rpc.Register(gameService)

	return s
}

// rulesFromConfig maps the configured rule settings onto the engine's
// rule set. Card composition is fixed.
func rulesFromConfig(cfg config.GameConfig) game.Rules {
	rules := game.DefaultRules()
	rules.TrainsPerPlayer = cfg.TrainsPerPlayer
	rules.DisplaySize = cfg.DisplaySize
	rules.DrawQuota = cfg.DrawQuota
	rules.LongestPathBonus = cfg.LongestPathBonus
	rules.FinalRoundThreshold = cfg.FinalRoundThreshold
	rules.InitialTicketOffer = cfg.InitialTicketOffer
	rules.InitialTicketMinKeep = cfg.InitialTicketMinKeep
	rules.MidgameTicketOffer = cfg.MidgameTicketOffer
	rules.MidgameTicketMinKeep = cfg.MidgameTicketMinKeep
	rules.LocomotiveFlushLimit = cfg.LocomotiveFlushLimit
	return rules
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()

	http.HandleFunc("/ws", s.handleWebSocket)
	logger.Log.Infof("Game server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, nil)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.rpcServer.Stop()
	s.timers.Stop()
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessionManager.Add(sess)
	s.monitor.IncOnlinePlayers()

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.sessionManager.Remove(sess.GetID())
		s.monitor.DecOnlinePlayers()
		if sess.RoomID != "" {
			if r, exists := s.roomManager.GetRoom(sess.RoomID); exists {
				r.RemovePlayer(sess.GetID())
			}
		}
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			packet, err := wsConn.ReadPacket()
			if err != nil {
				return
			}
			s.handlePacket(sess, packet)
		}
	}
}

func (s *GameServer) handlePacket(sess *session.Session, packet *network.Packet) {
	s.monitor.IncMessagesReceived()

	switch packet.MsgID {
	case network.MsgTypeHeartbeat:
		sess.LastActive = time.Now()
	case network.MsgTypeCreateRoom:
		s.handleCreateRoom(sess, packet)
	case network.MsgTypeJoinRoom:
		s.handleJoinRoom(sess, packet)
	case network.MsgTypeLeaveRoom:
		s.handleLeaveRoom(sess, packet)
	case network.MsgTypePlayerAction:
		s.handleGameAction(sess, packet)
	default:
		logger.Log.Infof("Unknown message type: %d", packet.MsgID)
	}
}

func (s *GameServer) roomOptions() room.Options {
	return room.Options{
		MinPlayers:  s.gameCfg.MinPlayers,
		MaxPlayers:  s.gameCfg.MaxPlayers,
		TurnTimeout: time.Duration(s.gameCfg.TurnTimeoutSeconds) * time.Second,
		Engine:      s.engine,
		Board:       s.board,
		Broadcaster: s.broadcaster,
		Timers:      s.timers,
		Sink:        &settlementSink{server: s},
	}
}

// settlementSink persists the match result and keeps the match counter
// in step with settlements.
type settlementSink struct {
	server *GameServer
}

func (k *settlementSink) RecordMatch(roomID string, scores []game.PlayerScore, duration time.Duration) error {
	k.server.monitor.IncMatchesFinished()
	return k.server.matchService.RecordMatch(roomID, scores, duration)
}

func (s *GameServer) handleCreateRoom(sess *session.Session, packet *network.Packet) {
	var req map[string]string
	if len(packet.Data) > 0 {
		if err := json.Unmarshal(packet.Data, &req); err == nil {
			if name := req["name"]; name != "" {
				sess.SetName(name)
			}
		}
	}

	roomID := uuid.New().String()
	r := s.roomManager.CreateRoom(roomID, "New Room", s.roomOptions())
	r.AddPlayer(sess)
	s.monitor.SetActiveRooms(s.roomManager.Count())

	logger.Log.Infof("Session %s created room %s", sess.GetID(), roomID)

	resp := map[string]string{"room_id": roomID, "player_id": sess.GetID()}
	data, _ := json.Marshal(resp)
	sess.Send(network.MsgTypeCreateRoom, data)
	s.broadcastRoomState(r)
}

// broadcastRoomState pushes the lobby view so waiting players see who
// is seated.
func (s *GameServer) broadcastRoomState(r *room.Room) {
	players := make([]map[string]string, 0)
	for _, member := range r.GetSessions() {
		players = append(players, map[string]string{
			"id":   member.GetID(),
			"name": member.GetName(),
		})
	}
	data, _ := json.Marshal(map[string]interface{}{
		"room_id": r.GetID(),
		"players": players,
	})
	r.Broadcast(network.MsgTypeRoomState, data)
}

func (s *GameServer) handleJoinRoom(sess *session.Session, packet *network.Packet) {
	var req map[string]string
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		return
	}
	if name := req["name"]; name != "" {
		sess.SetName(name)
	}
	roomID := req["room_id"]

	r, exists := s.roomManager.GetRoom(roomID)
	if !exists {
		return
	}

	if r.AddPlayer(sess) {
		logger.Log.Infof("Session %s joined room %s", sess.GetID(), roomID)
		resp := map[string]string{"room_id": roomID, "player_id": sess.GetID()}
		data, _ := json.Marshal(resp)
		sess.Send(network.MsgTypeJoinRoom, data)
		s.broadcastRoomState(r)
	} else {
		logger.Log.Infof("Session %s could not join room %s", sess.GetID(), roomID)
	}
}

func (s *GameServer) handleLeaveRoom(sess *session.Session, packet *network.Packet) {
	if sess.RoomID == "" {
		return
	}
	if r, exists := s.roomManager.GetRoom(sess.RoomID); exists {
		r.RemovePlayer(sess.GetID())
		if len(r.GetPlayers()) == 0 {
			s.roomManager.RemoveRoom(r.GetID())
			s.monitor.SetActiveRooms(s.roomManager.Count())
		} else {
			s.broadcastRoomState(r)
		}
	}
}

func (s *GameServer) handleGameAction(sess *session.Session, packet *network.Packet) {
	if sess.RoomID == "" {
		logger.Log.Warnf("Session %s sent game action but is not in a room", sess.GetID())
		return
	}

	r, exists := s.roomManager.GetRoom(sess.RoomID)
	if !exists {
		logger.Log.Errorf("Room %s not found for session %s", sess.RoomID, sess.GetID())
		return
	}

	start := time.Now()
	err := r.HandleAction(sess.GetID(), packet.Data)
	s.monitor.ObserveActionLatency(time.Since(start))

	if err == nil {
		s.monitor.IncActionsAccepted()
		return
	}
	if reason := game.RejectionReason(err); reason != "" {
		s.monitor.IncActionsRejected(string(reason))
		return
	}
	logger.Log.Errorf("Error handling action in room %s: %v", r.GetID(), err)
}
