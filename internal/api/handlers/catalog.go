package handlers

import (
	"net/http"
	"time"

	"github.com/ysqsimon/Remotely/internal/catalog"
	"github.com/ysqsimon/Remotely/pkg/models"
	"github.com/ysqsimon/Remotely/pkg/utils"

	"github.com/labstack/echo/v4"
)

// JobsHandler serves the job board listing. With no query it returns the
// whole board; with ?q= (and optional ?location=) it returns capped matches.
func JobsHandler(searcher *catalog.Searcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		jobs := searcher.SearchJobs(c.QueryParam("q"), c.QueryParam("location"))
		return c.JSON(http.StatusOK, models.JobListResponse{
			Jobs:  jobs,
			Total: len(jobs),
		})
	}
}

// JobHandler serves a single job by its identifier
func JobHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID := c.Param("id")
		job := cat.JobByID(jobID)
		if job == nil {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:     "job_not_found",
				Message:   "No job found with ID: " + jobID,
				RequestID: utils.GenerateRequestID(),
				Timestamp: time.Now(),
			})
		}
		return c.JSON(http.StatusOK, job)
	}
}

// TalentsHandler serves the talent pool, optionally filtered by ?q=
func TalentsHandler(searcher *catalog.Searcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		talents := searcher.SearchTalents(c.QueryParam("q"))
		return c.JSON(http.StatusOK, models.TalentListResponse{
			Talents: talents,
			Total:   len(talents),
		})
	}
}

// CompaniesHandler serves the company directory, optionally filtered by ?q=
func CompaniesHandler(searcher *catalog.Searcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		companies := searcher.SearchCompanies(c.QueryParam("q"))
		return c.JSON(http.StatusOK, models.CompanyListResponse{
			Companies: companies,
			Total:     len(companies),
		})
	}
}
