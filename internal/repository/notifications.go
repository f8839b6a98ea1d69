package repository

import (
	"context"
	"fmt"

	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
)

// CreateNotification inserts one notification row
func (r *GormRepo) CreateNotification(ctx context.Context, n *model.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create notification for user %s: %w", n.UserID, err)
	}
	return nil
}

// ListNotifications returns a user's notifications, newest first
func (r *GormRepo) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read = ?", false)
	}

	var out []model.Notification
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, err)
	}
	return out, nil
}

// MarkNotificationRead flips the read flag on one of the user's notifications
func (r *GormRepo) MarkNotificationRead(ctx context.Context, userID, notificationID string) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("mark notification %s read: %w", notificationID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("mark notification %s read: %w", notificationID, auctionerrors.ErrNotificationNotFound)
	}
	return nil
}

// MarkAllNotificationsRead flips every unread notification of the user
func (r *GormRepo) MarkAllNotificationsRead(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("mark notifications read for user %s: %w", userID, res.Error)
	}
	return res.RowsAffected, nil
}
