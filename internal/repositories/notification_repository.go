package repositories

import (
	"github.com/klipp-app/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification reads and
// read-flag updates. Emission and cleanup are the notifier's job.
type NotificationRepository interface {
	GetByID(id uint) (*models.Notification, error)
	GetByReceiverID(receiverID uint, page, limit int) ([]models.Notification, int64, error)
	GetUnreadCount(receiverID uint) (int64, error)
	MarkAsRead(notificationID uint) error
	MarkAllAsRead(receiverID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notif models.Notification
	if err := r.db.First(&notif, id).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *postgresNotificationRepository) GetByReceiverID(receiverID uint, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("receiver_id = ?", receiverID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := r.db.Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *postgresNotificationRepository) GetUnreadCount(receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("receiver_id = ? AND is_read = false", receiverID).Count(&count).Error
	return count, err
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true).Error
}

func (r *postgresNotificationRepository) MarkAllAsRead(receiverID uint) error {
	return r.db.Model(&models.Notification{}).Where("receiver_id = ? AND is_read = false", receiverID).Update("is_read", true).Error
}
