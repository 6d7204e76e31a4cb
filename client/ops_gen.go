package client

import "github.com/keioku/bcap-go/internal/ops"

// Generated thin wrappers over Call, one per catalogue entry (§4.7). Each
// just pairs a function ID with an argument list; the core contract lives
// in Call and the transport beneath it, not here.

func (c *Client) ServiceStart(option string) (any, error) {
	return c.Call(ops.ServiceStart, option)
}

func (c *Client) ServiceStop() (any, error) {
	return c.Call(ops.ServiceStop)
}

func (c *Client) ControllerConnect(name string, provider string, machine string, option string) (any, error) {
	return c.Call(ops.ControllerConnect, name, provider, machine, option)
}

func (c *Client) ControllerDisconnect(handle int32) (any, error) {
	return c.Call(ops.ControllerDisconnect, handle)
}

func (c *Client) ControllerGetExtension(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ControllerGetExtension, handle, name, option)
}

func (c *Client) ControllerGetFile(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ControllerGetFile, handle, name, option)
}

func (c *Client) ControllerGetRobot(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ControllerGetRobot, handle, name, option)
}

func (c *Client) ControllerGetTask(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ControllerGetTask, handle, name, option)
}

func (c *Client) ControllerGetVariable(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ControllerGetVariable, handle, name, option)
}

func (c *Client) ControllerGetCommand(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ControllerGetCommand, handle, name, option)
}

func (c *Client) ControllerGetExtensionNames(handle int32, option string) (any, error) {
	return c.Call(ops.ControllerGetExtensionNames, handle, option)
}

func (c *Client) ControllerGetFileNames(handle int32, option string) (any, error) {
	return c.Call(ops.ControllerGetFileNames, handle, option)
}

func (c *Client) ControllerGetRobotNames(handle int32, option string) (any, error) {
	return c.Call(ops.ControllerGetRobotNames, handle, option)
}

func (c *Client) ControllerGetTaskNames(handle int32, option string) (any, error) {
	return c.Call(ops.ControllerGetTaskNames, handle, option)
}

func (c *Client) ControllerGetVariableNames(handle int32, option string) (any, error) {
	return c.Call(ops.ControllerGetVariableNames, handle, option)
}

func (c *Client) ControllerGetCommandNames(handle int32, option string) (any, error) {
	return c.Call(ops.ControllerGetCommandNames, handle, option)
}

func (c *Client) ControllerExecute(handle int32, command string, param any) (any, error) {
	return c.Call(ops.ControllerExecute, handle, command, param)
}

func (c *Client) ControllerGetMessage(handle int32) (any, error) {
	return c.Call(ops.ControllerGetMessage, handle)
}

func (c *Client) ControllerGetAttribute(handle int32) (any, error) {
	return c.Call(ops.ControllerGetAttribute, handle)
}

func (c *Client) ControllerGetHelp(handle int32) (any, error) {
	return c.Call(ops.ControllerGetHelp, handle)
}

func (c *Client) ControllerGetName(handle int32) (any, error) {
	return c.Call(ops.ControllerGetName, handle)
}

func (c *Client) ControllerGetTag(handle int32) (any, error) {
	return c.Call(ops.ControllerGetTag, handle)
}

func (c *Client) ControllerPutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.ControllerPutTag, handle, newVal)
}

func (c *Client) ControllerGetId(handle int32) (any, error) {
	return c.Call(ops.ControllerGetId, handle)
}

func (c *Client) ControllerPutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.ControllerPutId, handle, newVal)
}

func (c *Client) ExtensionGetVariable(handle int32, name string, option string) (any, error) {
	return c.Call(ops.ExtensionGetVariable, handle, name, option)
}

func (c *Client) ExtensionGetVariableNames(handle int32, option string) (any, error) {
	return c.Call(ops.ExtensionGetVariableNames, handle, option)
}

func (c *Client) ExtensionExecute(handle int32, command string, param any) (any, error) {
	return c.Call(ops.ExtensionExecute, handle, command, param)
}

func (c *Client) ExtensionGetAttribute(handle int32) (any, error) {
	return c.Call(ops.ExtensionGetAttribute, handle)
}

func (c *Client) ExtensionGetHelp(handle int32) (any, error) {
	return c.Call(ops.ExtensionGetHelp, handle)
}

func (c *Client) ExtensionGetName(handle int32) (any, error) {
	return c.Call(ops.ExtensionGetName, handle)
}

func (c *Client) ExtensionGetTag(handle int32) (any, error) {
	return c.Call(ops.ExtensionGetTag, handle)
}

func (c *Client) ExtensionPutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.ExtensionPutTag, handle, newVal)
}

func (c *Client) ExtensionGetId(handle int32) (any, error) {
	return c.Call(ops.ExtensionGetId, handle)
}

func (c *Client) ExtensionPutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.ExtensionPutId, handle, newVal)
}

func (c *Client) ExtensionRelease(handle int32) (any, error) {
	return c.Call(ops.ExtensionRelease, handle)
}

func (c *Client) FileGetFile(handle int32, name string, option string) (any, error) {
	return c.Call(ops.FileGetFile, handle, name, option)
}

func (c *Client) FileGetVariable(handle int32, name string, option string) (any, error) {
	return c.Call(ops.FileGetVariable, handle, name, option)
}

func (c *Client) FileGetFileNames(handle int32, option string) (any, error) {
	return c.Call(ops.FileGetFileNames, handle, option)
}

func (c *Client) FileGetVariableNames(handle int32, option string) (any, error) {
	return c.Call(ops.FileGetVariableNames, handle, option)
}

func (c *Client) FileExecute(handle int32, command string, param any) (any, error) {
	return c.Call(ops.FileExecute, handle, command, param)
}

func (c *Client) FileCopy(handle int32, name string, option string) (any, error) {
	return c.Call(ops.FileCopy, handle, name, option)
}

func (c *Client) FileDelete(handle int32, option string) (any, error) {
	return c.Call(ops.FileDelete, handle, option)
}

func (c *Client) FileMove(handle int32, name string, option string) (any, error) {
	return c.Call(ops.FileMove, handle, name, option)
}

func (c *Client) FileRun(handle int32, option string) (any, error) {
	return c.Call(ops.FileRun, handle, option)
}

func (c *Client) FileGetDateCreated(handle int32) (any, error) {
	return c.Call(ops.FileGetDateCreated, handle)
}

func (c *Client) FileGetDateLastAccessed(handle int32) (any, error) {
	return c.Call(ops.FileGetDateLastAccessed, handle)
}

func (c *Client) FileGetDateLastModified(handle int32) (any, error) {
	return c.Call(ops.FileGetDateLastModified, handle)
}

func (c *Client) FileGetPath(handle int32) (any, error) {
	return c.Call(ops.FileGetPath, handle)
}

func (c *Client) FileGetSize(handle int32) (any, error) {
	return c.Call(ops.FileGetSize, handle)
}

func (c *Client) FileGetType(handle int32) (any, error) {
	return c.Call(ops.FileGetType, handle)
}

func (c *Client) FileGetValue(handle int32) (any, error) {
	return c.Call(ops.FileGetValue, handle)
}

func (c *Client) FilePutValue(handle int32, newVal any) (any, error) {
	return c.Call(ops.FilePutValue, handle, newVal)
}

func (c *Client) FileGetAttribute(handle int32) (any, error) {
	return c.Call(ops.FileGetAttribute, handle)
}

func (c *Client) FileGetHelp(handle int32) (any, error) {
	return c.Call(ops.FileGetHelp, handle)
}

func (c *Client) FileGetName(handle int32) (any, error) {
	return c.Call(ops.FileGetName, handle)
}

func (c *Client) FileGetTag(handle int32) (any, error) {
	return c.Call(ops.FileGetTag, handle)
}

func (c *Client) FilePutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.FilePutTag, handle, newVal)
}

func (c *Client) FileGetId(handle int32) (any, error) {
	return c.Call(ops.FileGetId, handle)
}

func (c *Client) FilePutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.FilePutId, handle, newVal)
}

func (c *Client) FileRelease(handle int32) (any, error) {
	return c.Call(ops.FileRelease, handle)
}

func (c *Client) RobotGetVariable(handle int32, name string, option string) (any, error) {
	return c.Call(ops.RobotGetVariable, handle, name, option)
}

func (c *Client) RobotGetVariableNames(handle int32, option string) (any, error) {
	return c.Call(ops.RobotGetVariableNames, handle, option)
}

func (c *Client) RobotExecute(handle int32, command string, param any) (any, error) {
	return c.Call(ops.RobotExecute, handle, command, param)
}

func (c *Client) RobotAccelerate(handle int32, axis int32, accel float64, decel float64) (any, error) {
	return c.Call(ops.RobotAccelerate, handle, axis, accel, decel)
}

func (c *Client) RobotChange(handle int32, name string) (any, error) {
	return c.Call(ops.RobotChange, handle, name)
}

func (c *Client) RobotChuck(handle int32, option string) (any, error) {
	return c.Call(ops.RobotChuck, handle, option)
}

func (c *Client) RobotDrive(handle int32, axis int32, mov float64, option string) (any, error) {
	return c.Call(ops.RobotDrive, handle, axis, mov, option)
}

func (c *Client) RobotGoHome(handle int32) (any, error) {
	return c.Call(ops.RobotGoHome, handle)
}

func (c *Client) RobotHalt(handle int32, option string) (any, error) {
	return c.Call(ops.RobotHalt, handle, option)
}

func (c *Client) RobotHold(handle int32, option string) (any, error) {
	return c.Call(ops.RobotHold, handle, option)
}

func (c *Client) RobotMove(handle int32, comp int32, pose any, option string) (any, error) {
	return c.Call(ops.RobotMove, handle, comp, pose, option)
}

func (c *Client) RobotRotate(handle int32, rotationSurface any, degree float64, pivot any, option string) (any, error) {
	return c.Call(ops.RobotRotate, handle, rotationSurface, degree, pivot, option)
}

func (c *Client) RobotSpeed(handle int32, axis int32, speed float64) (any, error) {
	return c.Call(ops.RobotSpeed, handle, axis, speed)
}

func (c *Client) RobotUnchuck(handle int32, option string) (any, error) {
	return c.Call(ops.RobotUnchuck, handle, option)
}

func (c *Client) RobotUnhold(handle int32, option string) (any, error) {
	return c.Call(ops.RobotUnhold, handle, option)
}

func (c *Client) RobotGetAttribute(handle int32) (any, error) {
	return c.Call(ops.RobotGetAttribute, handle)
}

func (c *Client) RobotGetHelp(handle int32) (any, error) {
	return c.Call(ops.RobotGetHelp, handle)
}

func (c *Client) RobotGetName(handle int32) (any, error) {
	return c.Call(ops.RobotGetName, handle)
}

func (c *Client) RobotGetTag(handle int32) (any, error) {
	return c.Call(ops.RobotGetTag, handle)
}

func (c *Client) RobotPutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.RobotPutTag, handle, newVal)
}

func (c *Client) RobotGetId(handle int32) (any, error) {
	return c.Call(ops.RobotGetId, handle)
}

func (c *Client) RobotPutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.RobotPutId, handle, newVal)
}

func (c *Client) RobotRelease(handle int32) (any, error) {
	return c.Call(ops.RobotRelease, handle)
}

func (c *Client) TaskGetVariable(handle int32, name string, option string) (any, error) {
	return c.Call(ops.TaskGetVariable, handle, name, option)
}

func (c *Client) TaskGetVariableNames(handle int32, option string) (any, error) {
	return c.Call(ops.TaskGetVariableNames, handle, option)
}

func (c *Client) TaskExecute(handle int32, command string, param any) (any, error) {
	return c.Call(ops.TaskExecute, handle, command, param)
}

func (c *Client) TaskStart(handle int32, mode any, option string) (any, error) {
	return c.Call(ops.TaskStart, handle, mode, option)
}

func (c *Client) TaskStop(handle int32, mode any, option string) (any, error) {
	return c.Call(ops.TaskStop, handle, mode, option)
}

func (c *Client) TaskDelete(handle int32, option string) (any, error) {
	return c.Call(ops.TaskDelete, handle, option)
}

func (c *Client) TaskGetFileName(handle int32) (any, error) {
	return c.Call(ops.TaskGetFileName, handle)
}

func (c *Client) TaskGetAttribute(handle int32) (any, error) {
	return c.Call(ops.TaskGetAttribute, handle)
}

func (c *Client) TaskGetHelp(handle int32) (any, error) {
	return c.Call(ops.TaskGetHelp, handle)
}

func (c *Client) TaskGetName(handle int32) (any, error) {
	return c.Call(ops.TaskGetName, handle)
}

func (c *Client) TaskGetTag(handle int32) (any, error) {
	return c.Call(ops.TaskGetTag, handle)
}

func (c *Client) TaskPutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.TaskPutTag, handle, newVal)
}

func (c *Client) TaskGetId(handle int32) (any, error) {
	return c.Call(ops.TaskGetId, handle)
}

func (c *Client) TaskPutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.TaskPutId, handle, newVal)
}

func (c *Client) TaskRelease(handle int32) (any, error) {
	return c.Call(ops.TaskRelease, handle)
}

func (c *Client) VariableGetDateTime(handle int32) (any, error) {
	return c.Call(ops.VariableGetDateTime, handle)
}

func (c *Client) VariableGetValue(handle int32) (any, error) {
	return c.Call(ops.VariableGetValue, handle)
}

func (c *Client) VariablePutValue(handle int32, newVal any) (any, error) {
	return c.Call(ops.VariablePutValue, handle, newVal)
}

func (c *Client) VariableGetAttribute(handle int32) (any, error) {
	return c.Call(ops.VariableGetAttribute, handle)
}

func (c *Client) VariableGetHelp(handle int32) (any, error) {
	return c.Call(ops.VariableGetHelp, handle)
}

func (c *Client) VariableGetName(handle int32) (any, error) {
	return c.Call(ops.VariableGetName, handle)
}

func (c *Client) VariableGetTag(handle int32) (any, error) {
	return c.Call(ops.VariableGetTag, handle)
}

func (c *Client) VariablePutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.VariablePutTag, handle, newVal)
}

func (c *Client) VariableGetId(handle int32) (any, error) {
	return c.Call(ops.VariableGetId, handle)
}

func (c *Client) VariablePutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.VariablePutId, handle, newVal)
}

func (c *Client) VariableGetMicrosecond(handle int32) (any, error) {
	return c.Call(ops.VariableGetMicrosecond, handle)
}

func (c *Client) VariableRelease(handle int32) (any, error) {
	return c.Call(ops.VariableRelease, handle)
}

func (c *Client) CommandExecute(handle int32, mode any) (any, error) {
	return c.Call(ops.CommandExecute, handle, mode)
}

func (c *Client) CommandCancel(handle int32) (any, error) {
	return c.Call(ops.CommandCancel, handle)
}

func (c *Client) CommandGetTimeout(handle int32) (any, error) {
	return c.Call(ops.CommandGetTimeout, handle)
}

func (c *Client) CommandPutTimeout(handle int32, newVal any) (any, error) {
	return c.Call(ops.CommandPutTimeout, handle, newVal)
}

func (c *Client) CommandGetState(handle int32) (any, error) {
	return c.Call(ops.CommandGetState, handle)
}

func (c *Client) CommandGetParameters(handle int32) (any, error) {
	return c.Call(ops.CommandGetParameters, handle)
}

func (c *Client) CommandPutParameters(handle int32, newVal any) (any, error) {
	return c.Call(ops.CommandPutParameters, handle, newVal)
}

func (c *Client) CommandGetResult(handle int32) (any, error) {
	return c.Call(ops.CommandGetResult, handle)
}

func (c *Client) CommandGetAttribute(handle int32) (any, error) {
	return c.Call(ops.CommandGetAttribute, handle)
}

func (c *Client) CommandGetHelp(handle int32) (any, error) {
	return c.Call(ops.CommandGetHelp, handle)
}

func (c *Client) CommandGetName(handle int32) (any, error) {
	return c.Call(ops.CommandGetName, handle)
}

func (c *Client) CommandGetTag(handle int32) (any, error) {
	return c.Call(ops.CommandGetTag, handle)
}

func (c *Client) CommandPutTag(handle int32, newVal any) (any, error) {
	return c.Call(ops.CommandPutTag, handle, newVal)
}

func (c *Client) CommandGetId(handle int32) (any, error) {
	return c.Call(ops.CommandGetId, handle)
}

func (c *Client) CommandPutId(handle int32, newVal any) (any, error) {
	return c.Call(ops.CommandPutId, handle, newVal)
}

func (c *Client) CommandRelease(handle int32) (any, error) {
	return c.Call(ops.CommandRelease, handle)
}

func (c *Client) MessageReply(handle int32, data any) (any, error) {
	return c.Call(ops.MessageReply, handle, data)
}

func (c *Client) MessageClear(handle int32) (any, error) {
	return c.Call(ops.MessageClear, handle)
}

func (c *Client) MessageGetDateTime(handle int32) (any, error) {
	return c.Call(ops.MessageGetDateTime, handle)
}

func (c *Client) MessageGetDescription(handle int32) (any, error) {
	return c.Call(ops.MessageGetDescription, handle)
}

func (c *Client) MessageGetDestination(handle int32) (any, error) {
	return c.Call(ops.MessageGetDestination, handle)
}

func (c *Client) MessageGetNumber(handle int32) (any, error) {
	return c.Call(ops.MessageGetNumber, handle)
}

func (c *Client) MessageGetSerialNumber(handle int32) (any, error) {
	return c.Call(ops.MessageGetSerialNumber, handle)
}

func (c *Client) MessageGetSource(handle int32) (any, error) {
	return c.Call(ops.MessageGetSource, handle)
}

func (c *Client) MessageGetValue(handle int32) (any, error) {
	return c.Call(ops.MessageGetValue, handle)
}

func (c *Client) MessageRelease(handle int32) (any, error) {
	return c.Call(ops.MessageRelease, handle)
}

