package speech

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/memegen/internal/model"
)

const (
	// TaskIDPrefix prefixes every speech task ID
	TaskIDPrefix = "speech-"

	// MaxFinishedTasks bounds how many finished tasks are kept for lookup
	MaxFinishedTasks = 20
)

// Service handles read-aloud requests. At most one utterance plays at a time:
// starting a new one stops the previous one.
type Service struct {
	synth      Synthesizer
	tasks      map[string]*model.SpeechTask
	order      []string
	cancels    map[string]context.CancelFunc
	done       map[string]chan struct{}
	tasksMutex sync.RWMutex
	onUpdate   func(model.SpeechTask) // callback for UI updates
}

// NewService creates a new speech service
func NewService(synth Synthesizer) *Service {
	return &Service{
		synth:   synth,
		tasks:   make(map[string]*model.SpeechTask),
		cancels: make(map[string]context.CancelFunc),
		done:    make(map[string]chan struct{}),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(model.SpeechTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// Speak starts reading the utterance, superseding any active one
func (s *Service) Speak(u model.Utterance) (model.SpeechTask, error) {
	if strings.TrimSpace(u.Text) == "" {
		return model.SpeechTask{}, ErrNotSpeakable
	}

	s.tasksMutex.Lock()

	var superseded []model.SpeechTask
	for id, task := range s.tasks {
		if task.Status == model.TaskStatusPending || task.Status.IsActive() {
			task.Status = model.TaskStatusStopping
			if cancel, ok := s.cancels[id]; ok {
				cancel()
			}
			superseded = append(superseded, *task)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	task := &model.SpeechTask{
		ID:        generateTaskID(),
		Utterance: u,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.cancels[task.ID] = cancel
	s.done[task.ID] = make(chan struct{})
	s.pruneLocked()
	snapshot := *task

	s.tasksMutex.Unlock()

	for _, t := range superseded {
		log.Printf("Superseding speech task %s", t.ID)
		s.notifyUpdate(t)
	}
	s.notifyUpdate(snapshot)

	go s.speak(ctx, task)

	return snapshot, nil
}

// Stop stops a running speech task
func (s *Service) Stop(taskID string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[taskID]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("speech task not found: %s", taskID)
	}

	if task.Status != model.TaskStatusPending && !task.Status.IsActive() {
		s.tasksMutex.Unlock()
		return fmt.Errorf("speech task is not active: %s", task.Status)
	}

	task.Status = model.TaskStatusStopping
	if cancel, ok := s.cancels[taskID]; ok {
		cancel()
	}
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notifyUpdate(snapshot)
	return nil
}

// GetTask returns a copy of a speech task by ID
func (s *Service) GetTask(taskID string) (model.SpeechTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return model.SpeechTask{}, false
	}
	return *task, true
}

// ActiveTask returns the utterance currently pending or playing
func (s *Service) ActiveTask() (model.SpeechTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	for _, task := range s.tasks {
		if task.Status == model.TaskStatusPending || task.Status.IsActive() {
			return *task, true
		}
	}
	return model.SpeechTask{}, false
}

// Wait blocks until the task finishes or ctx ends
func (s *Service) Wait(ctx context.Context, taskID string) (model.SpeechTask, error) {
	s.tasksMutex.RLock()
	done, exists := s.done[taskID]
	s.tasksMutex.RUnlock()
	if !exists {
		return model.SpeechTask{}, fmt.Errorf("speech task not found: %s", taskID)
	}

	select {
	case <-done:
	case <-ctx.Done():
		return model.SpeechTask{}, ctx.Err()
	}

	task, _ := s.GetTask(taskID)
	return task, nil
}

// speak runs the synthesizer and records the outcome
func (s *Service) speak(ctx context.Context, task *model.SpeechTask) {
	if !s.setStatus(task, model.TaskStatusStarting) {
		s.finish(ctx, task, ctx.Err())
		return
	}
	s.setStatus(task, model.TaskStatusSpeaking)

	err := s.synth.Speak(ctx, task.Utterance)
	if err != nil && ctx.Err() == nil {
		log.Printf("Speech task %s failed: %v", task.ID, err)
	}
	s.finish(ctx, task, err)
}

// setStatus moves an unstopped task forward; false once a stop was requested
func (s *Service) setStatus(task *model.SpeechTask, status model.TaskStatus) bool {
	s.tasksMutex.Lock()
	if task.Status == model.TaskStatusStopping {
		s.tasksMutex.Unlock()
		return false
	}
	task.Status = status
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notifyUpdate(snapshot)
	return true
}

func (s *Service) finish(ctx context.Context, task *model.SpeechTask, err error) {
	s.tasksMutex.Lock()
	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		task.Status = model.TaskStatusStopped
	case err != nil:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	default:
		task.Status = model.TaskStatusCompleted
	}
	task.FinishedAt = time.Now()

	if cancel, ok := s.cancels[task.ID]; ok {
		cancel()
		delete(s.cancels, task.ID)
	}
	if done, ok := s.done[task.ID]; ok {
		close(done)
	}
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notifyUpdate(snapshot)
}

// pruneLocked drops the oldest finished tasks beyond MaxFinishedTasks
func (s *Service) pruneLocked() {
	finished := 0
	for _, id := range s.order {
		if s.tasks[id].Status.IsFinished() {
			finished++
		}
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if finished > MaxFinishedTasks && s.tasks[id].Status.IsFinished() {
			delete(s.tasks, id)
			delete(s.done, id)
			finished--
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task model.SpeechTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique, time-ordered task ID using UUID v7
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
