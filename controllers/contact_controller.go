package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vietwoods/catalog-api/database"
	"github.com/vietwoods/catalog-api/dto"
	"github.com/vietwoods/catalog-api/mailer"
	"github.com/vietwoods/catalog-api/models"
	"github.com/vietwoods/catalog-api/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func sanitize(v string, maxLen int) string {
	v = strings.TrimSpace(v)
	if len(v) > maxLen {
		v = v[:maxLen]
	}
	return v
}

// CreateInquiry handles the public contact form: the inquiry is stored for
// the back office and confirmation/notification emails go out. m may be nil
// when SMTP is not configured; the inquiry is still recorded.
func CreateInquiry(m *mailer.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateInquiryDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		col := database.OpenCollection("inquiries")

		inq := models.Inquiry{
			FirstName: sanitize(body.FirstName, 200),
			LastName:  sanitize(body.LastName, 200),
			Email:     sanitize(body.Email, 320),
			Phone:     sanitize(body.Phone, 40),
			Message:   sanitize(body.Message, 8000),
			CreatedAt: time.Now().UTC(),
		}

		res, err := col.InsertOne(ctx, inq)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		inq.ID = res.InsertedID.(bson.ObjectID)

		reference := uuid.New().String()[:8]

		if m != nil {
			confirmErr := m.SendInquiryConfirmation(ctx, inq, reference)
			notifyErr := m.SendInquiryNotification(ctx, inq, reference)
			if confirmErr != nil || notifyErr != nil {
				logrus.WithFields(logrus.Fields{
					"confirmErr": confirmErr,
					"notifyErr":  notifyErr,
				}).Error("inquiry email send failed")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "failed to send email, please try again or contact us directly",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "reference": reference})
	}
}

// AdminListInquiries pages through stored contact inquiries, newest first.
func AdminListInquiries() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		col := database.OpenCollection("inquiries")

		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 20)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}
		skip := int64((page - 1) * limit)

		opts := options.Find().
			SetSkip(skip).
			SetLimit(int64(limit)).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer cursor.Close(ctx)

		items := make([]models.Inquiry, 0)
		for cursor.Next(ctx) {
			var inq models.Inquiry
			if err := cursor.Decode(&inq); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			items = append(items, inq)
		}
		if err := cursor.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		total, err := col.CountDocuments(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}
