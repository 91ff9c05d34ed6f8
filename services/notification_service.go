package services

import (
	"log"
	"sync"

	"pgstay-backend/models"
	"pgstay-backend/utils"
)

// NotificationService delivers emails off the request path through a
// small worker pool. A failed send is logged and dropped; it never
// touches the transition that triggered it.
type NotificationService struct {
	queue chan *models.EmailNotification
	wg    sync.WaitGroup
}

func NewNotificationService(workers int) *NotificationService {
	if workers <= 0 {
		workers = 2
	}
	ns := &NotificationService{
		queue: make(chan *models.EmailNotification, 100),
	}
	for i := 0; i < workers; i++ {
		ns.wg.Add(1)
		go ns.worker(i)
	}
	return ns
}

func (ns *NotificationService) worker(id int) {
	defer ns.wg.Done()
	for n := range ns.queue {
		if err := utils.SendEmailNotification(n); err != nil {
			log.Printf("notification worker %d: failed to send %q to %s: %v", id, n.Subject, n.To, err)
		}
	}
}

// Enqueue never blocks the caller; a full queue drops the notification
// with a log line.
func (ns *NotificationService) Enqueue(n *models.EmailNotification) {
	if n == nil {
		return
	}
	select {
	case ns.queue <- n:
	default:
		log.Printf("notification queue full, dropping email to %s", n.To)
	}
}

// Shutdown stops accepting work and waits for in-flight sends.
func (ns *NotificationService) Shutdown() {
	close(ns.queue)
	ns.wg.Wait()
}
