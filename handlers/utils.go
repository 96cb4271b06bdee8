package handlers

import (
	"context"
	"time"

	"github.com/edustack/school-fees-api/database"
	"github.com/edustack/school-fees-api/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/cache/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DBInsertResponse struct {
	InsertedId primitive.ObjectID `json:"inserted_id" bson:"_id"`
}

// Principal is the authenticated caller extracted from the JWT by the route
// middleware.
type Principal struct {
	UserId primitive.ObjectID `json:"userId"`
	Role   string             `json:"role"`
	Email  string             `json:"email"`
}

const PrincipalKey = "principal"

// PrincipalFromCtx returns the caller stored by the auth middleware.
func PrincipalFromCtx(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(PrincipalKey).(Principal)
	return p, ok
}

var validate = validator.New()

// Handler carries one resource's primary collection plus the shared logger
// and request context. Cross-collection lookups go through the Col helper.
type Handler struct {
	Db    *mongo.Collection
	Cache *cache.Cache
	L     *logrus.Logger
	C     context.Context
}

func NewHandler(collectionName string, l *logrus.Logger) *Handler {
	return &Handler{
		Db:    database.GetCollection(collectionName),
		Cache: database.GetCache(),
		L:     l,
		C:     context.Background(),
	}
}

// Col fetches a collection other than the handler's own.
func (h *Handler) Col(name string) *mongo.Collection {
	return database.GetCollection(name)
}

// activeParentFilter matches only active parent-role accounts. Every flow
// that notifies a "parent" recipient resolves the user through this filter,
// so a teacher or admin sharing the email can never be picked up.
func activeParentFilter(email string) bson.M {
	return bson.M{"email": email, "role": models.RoleParent, "status": models.UserActive}
}

// GetActiveParentByEmail resolves an active parent account by email, going
// through the cache when one is wired.
func (h *Handler) GetActiveParentByEmail(email string) (*models.User, error) {
	key := "parent:" + email

	var user models.User
	if h.Cache != nil {
		if err := h.Cache.Get(h.C, key, &user); err == nil {
			return &user, nil
		} else if err != cache.ErrCacheMiss {
			h.L.Error("[Cache] Error getting parent ", err)
		}
	}

	if err := h.Col(database.UsersCollection).FindOne(h.C, activeParentFilter(email)).Decode(&user); err != nil {
		return nil, err
	}

	if h.Cache != nil {
		if err := h.Cache.Set(&cache.Item{
			Ctx:   h.C,
			Key:   key,
			Value: &user,
			TTL:   time.Hour,
		}); err != nil {
			h.L.Error("[Cache] Error setting parent ", err)
		}
	}
	return &user, nil
}

func (h *Handler) GetSessionByID(id primitive.ObjectID) (*models.Session, error) {
	var session models.Session
	err := h.Col(database.SessionsCollection).FindOne(h.C, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (h *Handler) GetStudentByID(id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := h.Col(database.StudentsCollection).FindOne(h.C, bson.M{"_id": id}).Decode(&student)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (h *Handler) GetFeesGroupByID(id primitive.ObjectID) (*models.FeesGroup, error) {
	var group models.FeesGroup
	err := h.Col(database.FeesGroupsCollection).FindOne(h.C, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetFeesTypeUnderGroup enforces the type/group invariant: the lookup
// matches both the type id and its declared owning group.
func (h *Handler) GetFeesTypeUnderGroup(typeId, groupId primitive.ObjectID) (*models.FeesType, error) {
	var feesType models.FeesType
	filter := bson.M{"_id": typeId, "feesGroup": groupId}
	err := h.Col(database.FeesTypesCollection).FindOne(h.C, filter).Decode(&feesType)
	if err != nil {
		return nil, err
	}
	return &feesType, nil
}

// nameMap fetches {_id, name} pairs for the given ids from a collection.
func (h *Handler) nameMap(collection string, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	cursor, err := h.Col(collection).Find(h.C, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var refs []models.NamedRef
	if err = cursor.All(h.C, &refs); err != nil {
		return nil, err
	}
	for _, ref := range refs {
		names[ref.ID] = ref.Name
	}
	return names, nil
}

func FiberJsonResponse(c *fiber.Ctx, httpStatus int, status, message string, data any) error {
	return c.Status(httpStatus).JSON(fiber.Map{"status": status, "message": message, "data": data})
}

// parseObjectID converts a request-supplied hex id, mapping failures to the
// shared 400 shape at the call site.
func parseObjectID(hex string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(hex)
}

func validateStruct(v any) error {
	return validate.Struct(v)
}
