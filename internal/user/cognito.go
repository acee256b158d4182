package user

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
)

// CognitoAPI is the subset of the Cognito client the directory needs.
type CognitoAPI interface {
	ListUsers(ctx context.Context, params *cognitoidentityprovider.ListUsersInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUsersOutput, error)
	AdminListGroupsForUser(ctx context.Context, params *cognitoidentityprovider.AdminListGroupsForUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminListGroupsForUserOutput, error)
}

type CognitoDirectory struct {
	client     CognitoAPI
	userPoolID string
}

func NewCognitoDirectory(client CognitoAPI, userPoolID string) *CognitoDirectory {
	return &CognitoDirectory{client: client, userPoolID: userPoolID}
}

func NewCognitoClient(cfg aws.Config) *cognitoidentityprovider.Client {
	return cognitoidentityprovider.NewFromConfig(cfg)
}

func (d *CognitoDirectory) ListUsers(ctx context.Context) ([]User, error) {
	var (
		users []User
		token *string
	)

	for {
		out, err := d.client.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
			UserPoolId:      aws.String(d.userPoolID),
			PaginationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}

		for _, u := range out.Users {
			username := aws.ToString(u.Username)
			group, err := d.firstGroup(ctx, username)
			if err != nil {
				return nil, err
			}
			users = append(users, User{
				Username: username,
				Email:    emailOf(u.Attributes),
				Group:    group,
			})
		}

		if aws.ToString(out.PaginationToken) == "" {
			break
		}
		token = out.PaginationToken
	}

	return users, nil
}

func (d *CognitoDirectory) firstGroup(ctx context.Context, username string) (string, error) {
	out, err := d.client.AdminListGroupsForUser(ctx, &cognitoidentityprovider.AdminListGroupsForUserInput{
		UserPoolId: aws.String(d.userPoolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return "", fmt.Errorf("list groups for %s: %w", username, err)
	}
	if len(out.Groups) == 0 {
		return defaultGroup, nil
	}
	return aws.ToString(out.Groups[0].GroupName), nil
}

func emailOf(attrs []types.AttributeType) string {
	for _, attr := range attrs {
		if aws.ToString(attr.Name) == "email" {
			return aws.ToString(attr.Value)
		}
	}
	return defaultEmail
}
