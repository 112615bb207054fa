package peloton

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/peloctl/peloctl/pkg/models"
)

// Queries copied verbatim from the vendor web client. The gateway matches
// on operationName, so the bodies must stay byte-for-byte intact.
const viewUserStackQuery = `query ViewUserStack {
  viewUserStack {
    numClasses
    totalTime
    ... on StackResponseSuccess {
      numClasses
      totalTime
      userStack {
        stackedClassList {
          playOrder
          pelotonClass {
            joinToken
            title
            classId
            fitnessDiscipline {
              slug
              __typename
            }
            assets {
              thumbnailImage {
                location
                __typename
              }
              __typename
            }
            duration
            ... on OnDemandInstructorClass {
              joinToken
              title
              fitnessDiscipline {
                slug
                displayName
                __typename
              }
              contentFormat
              totalUserWorkouts
              originLocale {
                language
                __typename
              }
              captions {
                locales
                __typename
              }
              timeline {
                startOffset
                __typename
              }
              difficultyLevel {
                slug
                displayName
                __typename
              }
              airTime
              instructor {
                name
                __typename
              }
              __typename
            }
            classTypes {
              name
              __typename
            }
            playableOnPlatform
            contentAvailability
            isLimitedRide
            freeForLimitedTime
            __typename
          }
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}
`

const classDetailsFragment = `fragment ClassDetails on PelotonClass {
  joinToken
  title
  classId
  fitnessDiscipline {
    slug
    __typename
  }
  assets {
    thumbnailImage {
      location
      __typename
    }
    __typename
  }
  duration
  ... on OnDemandInstructorClass {
    title
    fitnessDiscipline {
      slug
      displayName
      __typename
    }
    contentFormat
    difficultyLevel {
      slug
      displayName
      __typename
    }
    airTime
    instructor {
      name
      __typename
    }
    __typename
  }
  classTypes {
    name
    __typename
  }
  playableOnPlatform
  contentAvailability
  isLimitedRide
  freeForLimitedTime
  __typename
}
`

const modifyStackQuery = `mutation ModifyStack($input: ModifyStackInput!) {
  modifyStack(input: $input) {
    numClasses
    totalTime
    userStack {
      stackedClassList {
        playOrder
        pelotonClass {
          ...ClassDetails
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}

` + classDetailsFragment

const addClassToStackQuery = `mutation AddClassToStack($input: AddClassToStackInput!) {
  addClassToStack(input: $input) {
    numClasses
    totalTime
    userStack {
      stackedClassList {
        playOrder
        pelotonClass {
          ...ClassDetails
          __typename
        }
        __typename
      }
      __typename
    }
    __typename
  }
}

` + classDetailsFragment

// Stack returns the titles of the classes queued in the user's stack,
// newline-joined in play order. ok is false when the gateway does not
// answer with the success variant.
func (c *Client) Stack() (titles string, ok bool, err error) {
	env, err := c.postGraphQL("ViewUserStack", viewUserStackQuery, map[string]interface{}{})
	if err != nil {
		return "", false, err
	}

	result := env.Data.ViewUserStack
	if result == nil || result.Typename != models.StackResponseSuccess {
		return "", false, nil
	}

	names := make([]string, 0, len(result.UserStack.StackedClassList))
	for _, cl := range result.UserStack.StackedClassList {
		names = append(names, cl.PelotonClass.Title)
	}
	return strings.Join(names, "\n"), true, nil
}

// ClearStack empties the user's stack. A malformed response is logged and
// reported as false rather than an error.
func (c *Client) ClearStack() (bool, error) {
	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"pelotonClassIdList": []string{},
		},
	}

	env, err := c.postGraphQL("ModifyStack", modifyStackQuery, variables)
	if err != nil {
		return false, err
	}

	result := env.Data.ModifyStack
	if result == nil {
		c.logger.Warn("unexpected clear stack response", "body", env)
		return false, nil
	}
	return result.Typename == models.StackResponseSuccess, nil
}

// StackClass queues the given class on the user's stack.
func (c *Client) StackClass(classID string) (bool, error) {
	variables := map[string]interface{}{
		"input": map[string]interface{}{
			"pelotonClassId": classID,
		},
	}

	env, err := c.postGraphQL("AddClassToStack", addClassToStackQuery, variables)
	if err != nil {
		return false, err
	}

	result := env.Data.AddClassToStack
	if result == nil {
		return false, fmt.Errorf("add class response missing addClassToStack")
	}
	return result.Typename == models.StackResponseSuccess, nil
}

func (c *Client) postGraphQL(operation, query string, variables map[string]interface{}) (*models.StackEnvelope, error) {
	body, err := json.Marshal(models.GraphQLRequest{
		Query:         query,
		OperationName: operation,
		Variables:     variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.gqlRoot, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("peloton-platform", "web")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: unexpected status %d", operation, resp.StatusCode)
	}

	var env models.StackEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return &env, nil
}
