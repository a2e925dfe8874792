package repositories

import (
	"fmt"

	"cargoflow/cargo/imdg"
	"cargoflow/cargo/loading"
	"cargoflow/models"
	"cargoflow/utils"

	"gorm.io/gorm"
)

// AssignmentRepository links orders to containers. Containers carry no
// available_* counters: consumed capacity is the aggregate of assigned
// orders, recomputed inside the per-container critical section.
type AssignmentRepository struct {
	db    *gorm.DB
	locks *utils.KeyLock
}

var assignmentLocks = utils.NewKeyLock()

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db, locks: assignmentLocks}
}

// Candidate is one order evaluated against a container, with the refusal
// reason when it does not fit.
type Candidate struct {
	Order   models.Order `json:"order"`
	CanBook bool         `json:"can_book"`
	Reason  string       `json:"reason"`
}

func (r *AssignmentRepository) loadContainer(tx *gorm.DB, id uint) (*models.Container, error) {
	var container models.Container
	err := tx.Preload("Transitaire").
		Preload("Orders.Transitaire").
		Preload("Orders.Lines.Product").
		First(&container, id).Error
	if err != nil {
		return nil, err
	}
	return &container, nil
}

func (r *AssignmentRepository) evaluate(container *models.Container, order *models.Order) (bool, string) {
	classes := append(container.LoadedClasses(), order.ImdgClasses()...)
	if result := imdg.CheckGroupCompatibility(classes); !result.Compatible {
		return false, result.Conflicts[0].Description
	}

	cargos := make([]loading.Cargo, 0, len(container.Orders))
	for i := range container.Orders {
		cargos = append(cargos, container.Orders[i].ToCargo())
	}
	current := loading.AggregateLoad(cargos)

	if d := loading.CanBook(order.ToCargo(), container.CapacityUnit(), current); !d.OK {
		return false, d.Reason
	}
	return true, ""
}

// Candidates evaluates every unassigned order of the container's transitaire
// and reports, per order, whether it would fit right now and why not
// otherwise. The planner screen shows the refusals verbatim.
func (r *AssignmentRepository) Candidates(containerID uint) ([]Candidate, error) {
	container, err := r.loadContainer(r.db, containerID)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := r.db.Preload("Transitaire").Preload("Lines.Product").
		Where("transitaire_id = ? AND container_id IS NULL AND groupage_id IS NULL",
			container.TransitaireID).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(orders))
	for i := range orders {
		ok, reason := r.evaluate(container, &orders[i])
		candidates = append(candidates, Candidate{Order: orders[i], CanBook: ok, Reason: reason})
	}
	return candidates, nil
}

// Assign links an order to a container after the segregation and capacity
// checks pass. The check-then-link sequence is serialized per container.
func (r *AssignmentRepository) Assign(containerID, orderID uint, userID int) error {
	key := fmt.Sprintf("container:%d", containerID)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	return r.db.Transaction(func(tx *gorm.DB) error {
		container, err := r.loadContainer(tx, containerID)
		if err != nil {
			return err
		}

		var order models.Order
		if err := tx.Preload("Transitaire").Preload("Lines.Product").
			First(&order, orderID).Error; err != nil {
			return err
		}

		if order.ContainerID != nil || order.GroupageID != nil {
			return &Refusal{Reason: "Commande déjà affectée à une unité"}
		}

		if ok, reason := r.evaluate(container, &order); !ok {
			return &Refusal{Reason: reason}
		}

		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Updates(map[string]interface{}{
				"container_id": container.ID,
				"updated_by":   userID,
			}).Error
	})
}

// Unassign detaches an order from its container.
func (r *AssignmentRepository) Unassign(containerID, orderID uint, userID int) error {
	key := fmt.Sprintf("container:%d", containerID)
	r.locks.Lock(key)
	defer r.locks.Unlock(key)

	res := r.db.Model(&models.Order{}).
		Where("id = ? AND container_id = ?", orderID, containerID).
		Updates(map[string]interface{}{
			"container_id": nil,
			"updated_by":   userID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &Refusal{Reason: "Commande non affectée à ce conteneur"}
	}
	return nil
}

// Load returns the container's current aggregate consumption.
func (r *AssignmentRepository) Load(containerID uint) (loading.Load, error) {
	container, err := r.loadContainer(r.db, containerID)
	if err != nil {
		return loading.Load{}, err
	}
	cargos := make([]loading.Cargo, 0, len(container.Orders))
	for i := range container.Orders {
		cargos = append(cargos, container.Orders[i].ToCargo())
	}
	return loading.AggregateLoad(cargos), nil
}
