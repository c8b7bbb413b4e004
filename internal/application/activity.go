package application

import (
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Endogen/antique-catalogue-sub001/internal/config"
	"github.com/Endogen/antique-catalogue-sub001/internal/domain/activity"
	"github.com/Endogen/antique-catalogue-sub001/internal/repository"
)

const defaultActivityLimit = 5

type ActivityService struct {
	Repos *repository.Repos

	mu      sync.Mutex
	feeds   map[uint]map[*websocket.Conn]struct{}
}

func NewActivityService(repos *repository.Repos) *ActivityService {
	return &ActivityService{
		Repos: repos,
		feeds: make(map[uint]map[*websocket.Conn]struct{}),
	}
}

// Record writes one activity log entry, prunes the user's history down to
// the configured cap, and pushes the entry to any live feed connections.
func (s *ActivityService) Record(userID uint, actionType, resourceType string, resourceID *uint, summary string) {
	entry := activity.Log{
		UserID:       userID,
		ActionType:   actionType,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Summary:      summary,
	}
	if err := s.Repos.Activity.Create(&entry); err != nil {
		log.Printf("[activity] failed to record %s %s for user %d: %v", actionType, resourceType, userID, err)
		return
	}

	if err := s.prune(userID); err != nil {
		log.Printf("[activity] failed to prune logs for user %d: %v", userID, err)
	}

	s.broadcast(userID, entry)
}

// ListByUser returns the user's newest entries, each annotated with the
// frontend path of the resource it refers to when one still exists.
func (s *ActivityService) ListByUser(userID uint, limit int) ([]activity.Entry, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > config.MaxActivityLogs {
		limit = config.MaxActivityLogs
	}
	logs, err := s.Repos.Activity.ListByUser(userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]activity.Entry, 0, len(logs))
	for _, entry := range logs {
		entries = append(entries, activity.Entry{Log: entry, TargetPath: s.targetPath(entry)})
	}
	return entries, nil
}

func (s *ActivityService) targetPath(entry activity.Log) *string {
	if entry.ResourceID == nil {
		return nil
	}
	switch {
	case entry.ResourceType == "collection":
		path := fmt.Sprintf("/collections/%d", *entry.ResourceID)
		return &path
	case entry.ActionType == "item.created":
		it, err := s.Repos.Item.GetByID(*entry.ResourceID)
		if err != nil {
			return nil
		}
		path := fmt.Sprintf("/collections/%d/items/%d", it.CollectionID, it.ID)
		return &path
	}
	return nil
}

func (s *ActivityService) prune(userID uint) error {
	ids, err := s.Repos.Activity.OverflowIDs(userID, config.MaxActivityLogs)
	if err != nil {
		return err
	}
	return s.Repos.Activity.DeleteByIDs(ids)
}

// Subscribe registers a websocket connection for a user's live feed.
func (s *ActivityService) Subscribe(userID uint, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.feeds[userID] == nil {
		s.feeds[userID] = make(map[*websocket.Conn]struct{})
	}
	s.feeds[userID][conn] = struct{}{}
}

func (s *ActivityService) Unsubscribe(userID uint, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conns, ok := s.feeds[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(s.feeds, userID)
		}
	}
}

func (s *ActivityService) broadcast(userID uint, entry activity.Log) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.feeds[userID] {
		if err := conn.WriteJSON(entry); err != nil {
			log.Printf("[activity] feed write failed for user %d: %v", userID, err)
			conn.Close()
			delete(s.feeds[userID], conn)
		}
	}
}
