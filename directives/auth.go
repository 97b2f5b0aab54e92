package directives

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"gorm.io/gorm"

	"github.com/collectivehq/platform_backend/config"
	"github.com/collectivehq/platform_backend/models"
	"github.com/collectivehq/platform_backend/utils"
)

// retrieve user from redis or db
func getUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	exists, err := config.GetRedisObject("User:"+username, &user)
	if err != nil {
		return nil, err
	}

	if !exists {

		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Take(&user).Error; err != nil {
			return nil, err
		}

		token_lifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
		if err != nil {
			return nil, err
		}

		if err := config.SetRedisObject("User:"+user.Username, &user, time.Duration(token_lifespan)*time.Hour); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// retrieve user by id for api token sessions (no redis session entry to map back to a username)
func getUserById(ctx context.Context, userId int) (*models.User, error) {
	var user models.User
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userId).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func Auth(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {

	var user *models.User
	var err error

	if username, ok := utils.GetUsernameFromContext(ctx); ok && username != "" {
		user, err = getUser(ctx, username)
		if err != nil && err == gorm.ErrRecordNotFound {
			// destroy current session if user has been deleted
			models.Logout(ctx)
		}
	} else if userId, ok := utils.GetUserIdFromContext(ctx); ok && userId != 0 {
		user, err = getUserById(ctx, userId)
	} else {
		return nil, &gqlerror.Error{
			Message: "Access Denied",
		}
	}

	if err != nil {
		return nil, &gqlerror.Error{
			Message: err.Error(),
		}
	}
	if !*user.IsActive {
		return nil, &gqlerror.Error{
			Message: "User is disabled",
		}
	}

	ctx = utils.SetUserIdInContext(ctx, user.ID)
	ctx = utils.SetUserNameInContext(ctx, user.Name)
	ctx = utils.SetIsAdminInContext(ctx, user.Role == models.UserRoleAdmin)

	return next(ctx)
}
