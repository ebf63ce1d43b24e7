package notifier

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"sync"
	"time"

	"github.com/blogem/grievance-portal/config"
	"github.com/blogem/grievance-portal/models"
	"github.com/blogem/grievance-portal/repositories"
)

const (
	defaultQueueSize   = 64
	defaultSendTimeout = 15 * time.Second
)

// Notifier dispatches grievance notification emails on a background worker.
// Enqueueing never blocks the caller and never fails the triggering request:
// delivery errors are logged and swallowed.
type Notifier struct {
	sender Sender
	repo   repositories.GrievanceRepository

	submitterName  string
	adminEmail     string
	submitterEmail string
	portalURL      string

	sendTimeout time.Duration

	jobs chan func(ctx context.Context)
	wg   sync.WaitGroup

	closeOnce sync.Once
}

// New creates a Notifier and starts its worker goroutine.
func New(sender Sender, repo repositories.GrievanceRepository, cfg *config.Config) *Notifier {
	n := &Notifier{
		sender:         sender,
		repo:           repo,
		submitterName:  cfg.SubmitterName,
		adminEmail:     cfg.AdminEmail,
		submitterEmail: cfg.SubmitterEmail,
		portalURL:      cfg.PortalURL,
		sendTimeout:    defaultSendTimeout,
		jobs:           make(chan func(ctx context.Context), defaultQueueSize),
	}

	n.wg.Add(1)
	go n.run()

	return n
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for job := range n.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), n.sendTimeout)
		job(ctx)
		cancel()
	}
}

// enqueue hands a job to the worker without ever blocking the caller.
// A full queue drops the notification; the store mutation already happened
// and must not be held up.
func (n *Notifier) enqueue(job func(ctx context.Context)) {
	select {
	case n.jobs <- job:
	default:
		log.Printf("notifier: queue full, dropping notification")
	}
}

// Close stops accepting notifications and waits for queued sends to finish.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		close(n.jobs)
	})
	n.wg.Wait()
}

// NotifyAdmin emails the administrator about a newly submitted grievance.
// The message is composed from a snapshot of the record at submission time.
func (n *Notifier) NotifyAdmin(grievance models.Grievance) {
	req := SendRequest{
		To:      []string{n.adminEmail},
		Subject: fmt.Sprintf("New Grievance from %s 💌", n.submitterName),
		HTML:    n.newGrievanceBody(grievance),
	}

	n.enqueue(func(ctx context.Context) {
		if _, err := n.sender.Send(ctx, req); err != nil {
			log.Printf("notifier: admin notification for grievance %d failed: %v", grievance.ID, err)
		}
	})
}

// NotifySubmitter emails the submitter about an administrator response.
// The record is re-read at send time so the mail reflects the current
// resolved status; an absent record skips the send.
func (n *Notifier) NotifySubmitter(id int, response string) {
	n.enqueue(func(ctx context.Context) {
		grievance, err := n.repo.GetByID(ctx, id)
		if errors.Is(err, repositories.ErrNotFound) {
			log.Printf("notifier: grievance %d not found, skipping response notification", id)
			return
		}
		if err != nil {
			log.Printf("notifier: lookup for grievance %d failed: %v", id, err)
			return
		}

		req := SendRequest{
			To:      []string{n.submitterEmail},
			Subject: fmt.Sprintf("Grievance Response Received - Re: %s", grievance.Title),
			HTML:    n.responseBody(grievance, response),
		}

		if _, err := n.sender.Send(ctx, req); err != nil {
			log.Printf("notifier: response notification for grievance %d failed: %v", id, err)
		}
	})
}

func (n *Notifier) newGrievanceBody(grievance models.Grievance) string {
	return fmt.Sprintf(`
		<h3>New Grievance Submitted 💌</h3>
		<p><strong>Title:</strong> %s</p>
		<p><strong>Mood:</strong> %s</p>
		<p><strong>Priority:</strong> %s</p>
		<p><strong>Description:</strong><br>%s</p>
		<hr>
		<p>Click below to respond:</p>
		<a href="%s/login"
		   style="padding:10px;background-color:pink;border:none;border-radius:5px;text-decoration:none;">
		   Respond 💌
		</a>`,
		html.EscapeString(grievance.Title),
		html.EscapeString(grievance.Mood),
		html.EscapeString(grievance.Priority),
		html.EscapeString(grievance.Description),
		n.portalURL,
	)
}

func (n *Notifier) responseBody(grievance *models.Grievance, response string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f9f9f9;">
				<div style="background-color:#fff;padding:20px;border-radius:8px;width:600px;margin:auto;">
					<h2 style="color:#4CAF50;">Grievance Response Received</h2>
					<p><strong>Title:</strong> %s</p>
					<p><strong>Priority:</strong> %s</p>
					<p><strong>Status:</strong> %s</p>
					<hr>
					<p><strong>Response:</strong></p>
					<blockquote style="background-color:#f4f4f4;padding:10px;border-left:4px solid #4CAF50;">
						%s
					</blockquote>
					<p style="color:#888;font-size:12px;">This is an automated message from your grievance portal.</p>
				</div>
			</body>
		</html>`,
		html.EscapeString(grievance.Title),
		html.EscapeString(grievance.Priority),
		grievance.StatusLabel(),
		html.EscapeString(response),
	)
}
