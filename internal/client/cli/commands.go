package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/dmitrijs2005/bucketlist/internal/client/api"
	"github.com/dmitrijs2005/bucketlist/internal/common"
)

func (a *App) Register() error {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(context.Background(), userName, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Registered. You can now log in.")
	return nil
}

func (a *App) Login() error {

	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(context.Background(), userName, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	fmt.Println("Login successful")
	return nil
}

func (a *App) Lists(args []string) error {

	search := ""
	if len(args) > 0 {
		search = args[0]
	}

	lists, err := a.client.Lists(context.Background(), search)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(lists) == 0 {
		fmt.Println("No bucketlists found.")
		return nil
	}

	for _, l := range lists {
		fmt.Printf("%d\t%s\t(%d items)\n", l.ID, l.Name, len(l.Items))
	}
	return nil
}

func (a *App) Create() error {

	name, err := GetSimpleText(a.reader, "Enter bucketlist name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	list, err := a.client.CreateList(context.Background(), name)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Created bucketlist %d: %s\n", list.ID, list.Name)
	return nil
}

func (a *App) Show(args []string) error {

	if len(args) == 0 {
		fmt.Println("Usage: show <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: show <id>")
		return nil
	}

	list, err := a.client.GetList(context.Background(), id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.printList(list)
	return nil
}

func (a *App) AddItem(args []string) error {

	if len(args) == 0 {
		fmt.Println("Usage: additem <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: additem <id>")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Enter item name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	list, err := a.client.AddItem(context.Background(), id, name)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.printList(list)
	return nil
}

func (a *App) Done(args []string) error {

	if len(args) < 2 {
		fmt.Println("Usage: done <id> <item_id>")
		return nil
	}
	id, err1 := strconv.ParseInt(args[0], 10, 64)
	itemID, err2 := strconv.ParseInt(args[1], 10, 64)
	if err1 != nil || err2 != nil {
		fmt.Println("Usage: done <id> <item_id>")
		return nil
	}

	item, err := a.client.SetItemDone(context.Background(), id, itemID, "True")
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Item %d marked done: %s\n", item.ID, item.Name)
	return nil
}

func (a *App) Drop(args []string) error {

	if len(args) == 0 {
		fmt.Println("Usage: drop <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Usage: drop <id>")
		return nil
	}

	if err := a.client.DeleteList(context.Background(), id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Bucketlist %d deleted.\n", id)
	return nil
}

func (a *App) Logout() error {

	if err := a.client.Logout(context.Background()); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.userName = ""
	fmt.Println("You have been logged out.")
	return nil
}

func (a *App) printList(list *api.BucketList) {
	fmt.Printf("%d\t%s\n", list.ID, list.Name)
	for _, item := range list.Items {
		mark := " "
		if item.Done == "True" {
			mark = "x"
		}
		fmt.Printf("  [%s] %d\t%s\n", mark, item.ID, item.Name)
	}
}
